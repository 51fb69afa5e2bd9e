package diff

import "testing"

func TestStrings_Identical(t *testing.T) {
	text := "[Desktop Entry]\nName=App\n"

	result := Strings(text, text)
	if !result.Identical {
		t.Error("expected identical result")
	}
	if result.LinesAdded != 0 || result.LinesRemoved != 0 {
		t.Errorf("expected no changes, got +%d -%d", result.LinesAdded, result.LinesRemoved)
	}
}

func TestStrings_ChangedLine(t *testing.T) {
	oldText := "[Desktop Entry]\nName=Old\nExec=run\n"
	newText := "[Desktop Entry]\nName=New\nExec=run\n"

	result := Strings(oldText, newText)
	if result.Identical {
		t.Fatal("expected a difference")
	}
	if result.LinesAdded != 1 || result.LinesRemoved != 1 {
		t.Errorf("expected +1 -1, got +%d -%d", result.LinesAdded, result.LinesRemoved)
	}

	var sawDelete, sawInsert bool
	for _, line := range result.Lines {
		switch {
		case line.Type == Delete && line.Content == "Name=Old":
			sawDelete = true
		case line.Type == Insert && line.Content == "Name=New":
			sawInsert = true
		}
	}
	if !sawDelete || !sawInsert {
		t.Errorf("missing expected lines in %+v", result.Lines)
	}
}

func TestStrings_AddedLine(t *testing.T) {
	oldText := "[Desktop Entry]\nName=App\n"
	newText := "[Desktop Entry]\nName=App\nComment=new\n"

	result := Strings(oldText, newText)
	if result.LinesAdded != 1 {
		t.Errorf("LinesAdded = %d, want 1", result.LinesAdded)
	}
	if result.LinesRemoved != 0 {
		t.Errorf("LinesRemoved = %d, want 0", result.LinesRemoved)
	}
}

func TestStrings_AgainstEmpty(t *testing.T) {
	result := Strings("", "[Desktop Entry]\nName=App\n")
	if result.Identical {
		t.Fatal("expected a difference")
	}
	if result.LinesAdded == 0 {
		t.Error("expected added lines for a brand new file")
	}
	if result.LinesRemoved != 0 {
		t.Errorf("LinesRemoved = %d, want 0", result.LinesRemoved)
	}
}
