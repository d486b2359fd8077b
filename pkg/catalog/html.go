package catalog

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseHTML extracts courses from a published course listing. Each course is a
// row of table.courses where every cell carries a data-field attribute naming
// the Course field it holds, e.g. <td data-field="code">CS 1050</td>.
// Availability may be given as a single "available/total" cell.
func ParseHTML(r io.Reader) (*Catalog, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var courses []Course
	var rowErr error

	doc.Find("table.courses tbody tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		var c Course

		row.Find("td[data-field]").Each(func(j int, cell *goquery.Selection) {
			field, _ := cell.Attr("data-field")
			text := strings.Join(strings.Fields(cell.Text()), " ")

			var err error

			switch field {
			case "id":
				c.ID = text
			case "code":
				c.Code = text
			case "title":
				c.Title = text
			case "credits":
				c.Credits, err = atoiField(field, text)
			case "professor":
				c.Professor = text
			case "schedule":
				c.Schedule = text
			case "location":
				c.Location = text
			case "availability":
				c.AvailableSpots, c.TotalSpots, err = parseAvailability(text)
			case "department":
				c.Department = text
			case "description":
				c.Description = text
			}

			if err != nil && rowErr == nil {
				rowErr = err
			}
		})

		if rowErr != nil {
			rowErr = fmt.Errorf("row %d: %w", i+1, rowErr)
			return false
		}

		// Rows without a code are section headings or spacers.
		if c.Code == "" {
			return true
		}
		if c.ID == "" {
			c.ID = c.Code
		}
		courses = append(courses, c)
		return true
	})

	if rowErr != nil {
		return nil, rowErr
	}

	cat := &Catalog{Courses: courses}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

func atoiField(field, text string) (int, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", field, text)
	}
	return n, nil
}

// parseAvailability reads "12/30" or "12 / 30".
func parseAvailability(text string) (int, int, error) {
	parts := strings.Split(text, "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid availability %q", text)
	}
	available, err := atoiField("availability", strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	total, err := atoiField("availability", strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return available, total, nil
}
