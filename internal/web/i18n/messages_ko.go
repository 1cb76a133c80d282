package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Korean

	// Page chrome
	message.SetString(lang, "title.archive", "%s | 판단 기록 아카이브")
	message.SetString(lang, "archive.heading", "판단 기록 아카이브")
	message.SetString(lang, "archive.intro.1", "이것은 조언이 아닙니다.")
	message.SetString(lang, "archive.intro.2", "이것은 예언이 아닙니다.")
	message.SetString(lang, "archive.intro.3", "어떤 권위도 호출하지 않습니다.")
	message.SetString(lang, "archive.intro.4", "기준·선택·책임을 텍스트로 남깁니다.")
	message.SetString(lang, "archive.principles.heading", "판단 원칙")
	message.SetString(lang, "archive.principle.1", "지금은 결정하지 않는다.")
	message.SetString(lang, "archive.principle.2", "기준은 유지, 행동은 보류한다.")
	message.SetString(lang, "archive.principle.3", "판단은 기록으로 남기고, 행동은 다음 단계로 넘긴다.")
	message.SetString(lang, "archive.footer", "기록은 경계다. 경계는 현실과의 약속이다.")

	// Language nav
	message.SetString(lang, "nav.language", "언어")
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_ko", "KO")

	// Form
	message.SetString(lang, "form.heading", "새 기록")
	message.SetString(lang, "form.mode.label", "양식")
	message.SetString(lang, "form.mode.simple", "간단")
	message.SetString(lang, "form.mode.full", "전체")
	message.SetString(lang, "form.save", "기록 저장")
	message.SetString(lang, "form.clear", "입력 지우기")

	// Simple template fields
	message.SetString(lang, "field.one_sentence_problem", "한 문장으로 쓴 문제")
	message.SetString(lang, "field.stance", "입장")
	message.SetString(lang, "field.next_smallest_step", "다음 가장 작은 한 단계")
	message.SetString(lang, "field.boundary_not_to_cross", "넘지 않을 경계")

	// Full template fields
	message.SetString(lang, "field.title", "제목 (한 줄)")
	message.SetString(lang, "field.context", "상황 (사실만)")
	message.SetString(lang, "field.decision", "선택 (구체적으로)")
	message.SetString(lang, "field.alternatives", "대안")
	message.SetString(lang, "field.standards", "사용한 기준")
	message.SetString(lang, "field.refuse_to_betray", "끝내 배반하지 않을 것")
	message.SetString(lang, "field.assumptions", "가정 (내가 사실이라 믿는 것)")
	message.SetString(lang, "field.unknowns", "미지 (아직 확인하지 못한 것)")
	message.SetString(lang, "field.risk_boundary", "리스크 / 하방 경계")
	message.SetString(lang, "field.sequence_next_steps", "다음 단계 (순서대로)")
	message.SetString(lang, "field.signals_to_watch", "관찰 신호")
	message.SetString(lang, "field.review_checkpoint", "점검 시점")
	message.SetString(lang, "field.notes", "메모 (짧게)")

	// Saved records
	message.SetString(lang, "entries.heading", "저장된 기록")
	message.SetString(lang, "entries.empty", "아직 이 세션에 저장된 기록이 없습니다.")
	message.SetString(lang, "entries.clear_all", "전체 삭제")
	message.SetString(lang, "entries.download", "JSON 다운로드")
	message.SetString(lang, "entries.download_all", "전체 다운로드 (JSON)")
	message.SetString(lang, "entries.download_csv", "전체 다운로드 (CSV)")

	// Notices and errors
	message.SetString(lang, "flash.saved", "기록이 저장되었습니다.")
	message.SetString(lang, "flash.cleared", "모든 기록이 삭제되었습니다.")
	message.SetString(lang, "warning.empty_content", "내용이 비어 있어 저장할 수 없습니다.")
	message.SetString(lang, "error.http.method_not_allowed", "허용되지 않는 메서드입니다")
	message.SetString(lang, "error.http.not_found", "페이지를 찾을 수 없습니다")
	message.SetString(lang, "error.export_failed", "내보내기에 실패했습니다. 저장된 기록은 그대로 남아 있습니다.")
}
