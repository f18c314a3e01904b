package calc

import (
	"log"

	"github.com/Sri-dinesh/CogniSketch-Backend/api/internal/util"
)

// Normalize turns the raw model reply into a ResultList. A reply that does
// not parse as a list of mappings degrades to an empty list rather than an
// error: a confused model means "nothing recognized", never a failed request.
//
// Every record leaves with a boolean "assign": the key being present in the
// reply signals an assignment regardless of its literal value, its absence
// means false. Other keys pass through untouched, in reply order.
func Normalize(raw string) ResultList {
	cleaned := util.StripCodeFences(raw)
	records, err := parseLiteralList(cleaned)
	if err != nil {
		log.Printf("normalize: unparseable reply, returning no results: %v", err)
		return ResultList{}
	}
	out := make(ResultList, 0, len(records))
	for _, rec := range records {
		if _, ok := rec["assign"]; ok {
			rec["assign"] = true
		} else {
			rec["assign"] = false
		}
		out = append(out, rec)
	}
	return out
}
