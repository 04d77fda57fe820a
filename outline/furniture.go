package outline

import (
	"github.com/tsawler/rubrica/internal/textnorm"
	"github.com/tsawler/rubrica/model"
)

// furnitureKeys identifies running headers and footers: text whose
// normalized key repeats on at least FurnitureMinPages distinct pages
// and whose every occurrence sits within the top or bottom
// FurnitureBand of its page. The returned set feeds the detector and
// the title resolver, which both ignore furniture.
func furnitureKeys(doc *model.Document, cfg Config) map[string]bool {
	keys := make(map[string]bool)
	if cfg.FurnitureMinPages <= 0 || doc.PageCount() < cfg.FurnitureMinPages {
		return keys
	}

	type occurrence struct {
		pages    map[int]bool
		edgeOnly bool
	}
	seen := make(map[string]*occurrence)

	for _, page := range doc.Pages {
		top := page.Height * (1 - cfg.FurnitureBand)
		bottom := page.Height * cfg.FurnitureBand

		for _, f := range page.Fragments {
			key := textnorm.Key(f.Text)
			if key == "" {
				continue
			}
			occ, ok := seen[key]
			if !ok {
				occ = &occurrence{pages: make(map[int]bool), edgeOnly: true}
				seen[key] = occ
			}
			occ.pages[f.Page] = true
			if f.Y < top && f.Y > bottom {
				occ.edgeOnly = false
			}
		}
	}

	for key, occ := range seen {
		if occ.edgeOnly && len(occ.pages) >= cfg.FurnitureMinPages {
			keys[key] = true
		}
	}
	return keys
}
