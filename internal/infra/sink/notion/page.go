package notion

import "github.com/kevinosminski/crypto-notion-tracker/internal/txsync"

type (
	// pageRequest is the body of a page-creation call.
	pageRequest struct {
		Parent     pageParent          `json:"parent"`
		Properties map[string]property `json:"properties"`
	}

	pageParent struct {
		DatabaseID string `json:"database_id"`
	}

	// property is a typed database property. Exactly one field is set per
	// value; the rest are omitted.
	property struct {
		Number   *float64      `json:"number,omitempty"`
		RichText []richText    `json:"rich_text,omitempty"`
		Select   *selectOption `json:"select,omitempty"`
		Date     *dateValue    `json:"date,omitempty"`
	}

	richText struct {
		Text textContent `json:"text"`
	}

	textContent struct {
		Content string `json:"content"`
	}

	selectOption struct {
		Name string `json:"name"`
	}

	dateValue struct {
		Start string `json:"start"`
	}
)

func numberProperty(v float64) property {
	return property{Number: &v}
}

func richTextProperty(s string) property {
	return property{RichText: []richText{{Text: textContent{Content: s}}}}
}

func selectProperty(name string) property {
	return property{Select: &selectOption{Name: name}}
}

func dateProperty(start string) property {
	return property{Date: &dateValue{Start: start}}
}

// newPageRequest encodes a valued record into the database's property schema.
// Property names must match the database columns exactly.
func newPageRequest(databaseID string, record txsync.ValuedRecord) pageRequest {
	return pageRequest{
		Parent: pageParent{DatabaseID: databaseID},
		Properties: map[string]property{
			"Amount":        numberProperty(record.Amount.InexactFloat64()),
			"Token":         richTextProperty(record.Token),
			"Fiat":          numberProperty(record.FiatAmount.InexactFloat64()),
			"Fiat Currency": richTextProperty(record.FiatCurrency),
			"Network":       selectProperty(record.Network),
			"To Address":    richTextProperty(record.ToAddress),
			"Date":          dateProperty(record.Date),
		},
	}
}
