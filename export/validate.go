package export

import (
	"errors"
	"fmt"

	"github.com/tsawler/rubrica/model"
)

// Validate checks a result against the output contract: every entry
// carries a level in the H1-H3 range, non-empty text and a 1-based
// page number, and entries are ordered by non-decreasing page. All
// violations are reported, joined into one error. A nil return means
// the result is safe to serialize.
func Validate(res model.Result) error {
	var errs []error

	for i, e := range res.Outline {
		if !e.Level.Valid() {
			errs = append(errs, fmt.Errorf("entry %d: level %d out of range", i, int(e.Level)))
		}
		if e.Text == "" {
			errs = append(errs, fmt.Errorf("entry %d: empty text", i))
		}
		if e.Page < 1 {
			errs = append(errs, fmt.Errorf("entry %d: page %d is not 1-based", i, e.Page))
		}
		if i > 0 && e.Page < res.Outline[i-1].Page {
			errs = append(errs, fmt.Errorf("entry %d: page %d precedes page %d", i, e.Page, res.Outline[i-1].Page))
		}
	}

	return errors.Join(errs...)
}
