package countries

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/veldran/countrygen/errors"
)

// requiredFields lists the dataset keys every record must carry, in the order
// they are reported when absent.
var requiredFields = []string{"name", "flag", "code", "dial_code"}

// MissingFieldError reports a dataset record that lacks one of the four
// required keys.
type MissingFieldError struct {
	Index int    // position of the record in the input array
	Field string // the missing JSON key
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("record %d: missing required field %q", e.Index, e.Field)
}

// rawCountry mirrors Country with pointer fields so that an absent key is
// distinguishable from an empty string.
type rawCountry struct {
	Name     *string `json:"name"`
	Flag     *string `json:"flag"`
	Code     *string `json:"code"`
	DialCode *string `json:"dial_code"`
}

func (r *rawCountry) field(key string) *string {
	switch key {
	case "name":
		return r.Name
	case "flag":
		return r.Flag
	case "code":
		return r.Code
	case "dial_code":
		return r.DialCode
	}
	return nil
}

// Load reads the dataset at path and returns its records in input order.
//
// Errors: a missing file surfaces as a wrapped fs.ErrNotExist; a document
// that is not a JSON array of objects surfaces as a wrapped parse error; a
// record lacking one of the required keys surfaces as *MissingFieldError.
func Load(path string) ([]Country, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read dataset %s", path)
	}

	records, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid dataset %s", path)
	}
	return records, nil
}

// Parse decodes a JSON array of country records, validating field presence
// for each record. Order is preserved; no deduplication or sorting.
func Parse(data []byte) ([]Country, error) {
	var raw []rawCountry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "document is not a JSON array of records")
	}

	records := make([]Country, len(raw))
	for i, r := range raw {
		for _, key := range requiredFields {
			if r.field(key) == nil {
				return nil, &MissingFieldError{Index: i, Field: key}
			}
		}
		records[i] = Country{
			Name:     *r.Name,
			Flag:     *r.Flag,
			Code:     *r.Code,
			DialCode: *r.DialCode,
		}
	}
	return records, nil
}
