package catalog

import (
	"strings"
	"testing"
)

const listingHTML = `<html><body>
<table class="courses">
  <thead><tr><th>Code</th><th>Title</th></tr></thead>
  <tbody>
    <tr>
      <td data-field="id">101</td>
      <td data-field="code">CS 1050</td>
      <td data-field="title">Introduction to
          Computer Science</td>
      <td data-field="credits">4</td>
      <td data-field="professor">Dr. Claire Martin</td>
      <td data-field="schedule">Mon, Wed 10:00-11:30</td>
      <td data-field="location">Combes 104</td>
      <td data-field="availability">12 / 30</td>
      <td data-field="department">Computer Science</td>
    </tr>
    <tr><td colspan="9">Economics</td></tr>
    <tr>
      <td data-field="code">EC 1010</td>
      <td data-field="title">Principles of Microeconomics</td>
      <td data-field="credits">4</td>
      <td data-field="availability">0/35</td>
    </tr>
  </tbody>
</table>
</body></html>`

func TestParseHTML(t *testing.T) {
	cat, err := ParseHTML(strings.NewReader(listingHTML))
	if err != nil {
		t.Fatalf("ParseHTML failed: %v", err)
	}

	if len(cat.Courses) != 2 {
		t.Fatalf("expected 2 courses, got %d: %+v", len(cat.Courses), cat.Courses)
	}

	first := cat.Courses[0]
	if first.Title != "Introduction to Computer Science" {
		t.Errorf("expected whitespace-collapsed title, got %q", first.Title)
	}
	if first.AvailableSpots != 12 || first.TotalSpots != 30 {
		t.Errorf("expected availability 12/30, got %d/%d", first.AvailableSpots, first.TotalSpots)
	}
	if first.Schedule != "Mon, Wed 10:00-11:30" {
		t.Errorf("unexpected schedule %q", first.Schedule)
	}

	second := cat.Courses[1]
	if second.ID != "EC 1010" {
		t.Errorf("expected missing id to fall back to code, got %q", second.ID)
	}
	if !second.Full() {
		t.Errorf("expected EC 1010 to be full")
	}
}

func TestParseHTMLBadNumber(t *testing.T) {
	page := `<table class="courses"><tbody><tr>
<td data-field="code">X</td><td data-field="title">X</td><td data-field="credits">four</td>
</tr></tbody></table>`

	_, err := ParseHTML(strings.NewReader(page))
	if err == nil || !strings.Contains(err.Error(), "row 1") {
		t.Fatalf("expected row error for bad credits, got %v", err)
	}
}
