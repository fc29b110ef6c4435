package extraction

import (
	"strings"

	"ocextract/pkg/models"
)

// extractItems locates the item table and parses each well-formed row,
// in document order. A missing table header yields an empty list; rows
// that do not match the row shape are skipped without recovery.
func (p *patterns) extractItems(text string) []models.Item {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if p.tableHeader.MatchString(line) {
			start = i
			break
		}
	}
	if start == -1 {
		return []models.Item{}
	}

	end := len(lines)
scan:
	for i := start + 1; i < len(lines); i++ {
		for _, footer := range p.tableFooters {
			if footer.MatchString(lines[i]) {
				end = i
				break scan
			}
		}
	}

	section := strings.Join(lines[start+1:end], "\n")

	items := []models.Item{}
	for _, m := range p.itemRow.FindAllStringSubmatch(section, -1) {
		description := strings.TrimSpace(m[2])
		description = strings.TrimSpace(p.descAnnotation.ReplaceAllString(description, ""))
		items = append(items, models.Item{
			Code:         m[1],
			Description:  description,
			Quantity:     ParseBRLNumber(m[3]),
			Unit:         m[4],
			UnitPrice:    ParseBRLNumber(m[5]),
			IPI:          ParseBRLNumber(m[6]),
			Total:        ParseBRLNumber(m[7]),
			DeliveryDate: m[8],
		})
	}
	return items
}
