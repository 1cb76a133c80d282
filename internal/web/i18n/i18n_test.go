package i18n

import (
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestParseTagMatchesByBaseLanguage(t *testing.T) {
	cases := map[string]language.Tag{
		"ko":    language.Korean,
		"ko-KR": language.Korean,
		"en":    language.English,
		"en-GB": language.English,
	}
	for value, want := range cases {
		tag, ok := ParseTag(value)
		if !ok || tag != want {
			t.Fatalf("ParseTag(%q) = %v/%v, want %v", value, tag, ok, want)
		}
	}
}

func TestParseTagRejectsUnsupported(t *testing.T) {
	for _, value := range []string{"", "pt-BR", "???", "ja"} {
		if _, ok := ParseTag(value); ok {
			t.Fatalf("ParseTag(%q) unexpectedly succeeded", value)
		}
	}
}

func TestResolveTagPrefersQueryParam(t *testing.T) {
	r := httptest.NewRequest("GET", "/?lang=ko", nil)
	r.Header.Set("Accept-Language", "en")

	tag, persist := ResolveTag(r)
	if tag != language.Korean {
		t.Fatalf("tag = %v, want Korean", tag)
	}
	if !persist {
		t.Fatal("expected query-selected language to request cookie persistence")
	}
}

func TestResolveTagCookieAndHeaderOrder(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Cookie", LangCookieName+"=ko")
	r.Header.Set("Accept-Language", "en-US")

	tag, persist := ResolveTag(r)
	if tag != language.Korean {
		t.Fatalf("tag = %v, want Korean from cookie", tag)
	}
	if persist {
		t.Fatal("cookie-resolved language must not re-persist")
	}

	r = httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Accept-Language", "ko-KR,ko;q=0.9,en;q=0.5")
	tag, _ = ResolveTag(r)
	if tag != language.Korean {
		t.Fatalf("tag = %v, want Korean from Accept-Language", tag)
	}
}

func TestResolveTagDefaultsToEnglish(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	tag, persist := ResolveTag(r)
	if tag != language.English || persist {
		t.Fatalf("tag = %v persist = %v, want English without persistence", tag, persist)
	}
}

func TestPrinterUsesRegisteredMessages(t *testing.T) {
	en := Printer(language.English).Sprintf("warning.empty_content")
	ko := Printer(language.Korean).Sprintf("warning.empty_content")

	if en != "Nothing to save: the record is empty." {
		t.Fatalf("en warning = %q", en)
	}
	if ko != "내용이 비어 있어 저장할 수 없습니다." {
		t.Fatalf("ko warning = %q", ko)
	}
}
