package cons

import "testing"

func TestNoticeEnumsClosed(t *testing.T) {
	for _, c := range NoticeCategories() {
		if !c.Valid() {
			t.Fatalf("category %s should be valid", c)
		}
	}
	if NoticeCategory("party").Valid() {
		t.Fatalf("unknown category must be invalid")
	}
	// 大小写敏感：闭集只认小写写法
	if NoticeCategory("Technical").Valid() {
		t.Fatalf("enum check must be case sensitive")
	}

	for _, p := range NoticePriorities() {
		if !p.Valid() {
			t.Fatalf("priority %s should be valid", p)
		}
	}
	if NoticePriority("normal").Valid() {
		t.Fatalf("unknown priority must be invalid")
	}
}

func TestNoticeAccessorsReturnCopies(t *testing.T) {
	cats := NoticeCategories()
	cats[0] = "tampered"
	if NoticeCategories()[0] == "tampered" {
		t.Fatalf("NoticeCategories must return a copy")
	}
}
