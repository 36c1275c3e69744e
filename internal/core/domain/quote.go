package domain

// Quote is a scripture or inspirational quote shown on the public site.
type Quote struct {
	QuoteText          string `json:"quote_text"`
	Author             string `json:"author"`
	ScriptureReference string `json:"scripture_reference,omitempty"`
	IsActive           bool   `json:"-"`
}

// FallbackQuote is served when no active quote exists in the store.
func FallbackQuote() *Quote {
	return &Quote{
		QuoteText:          "For I know the plans I have for you, declares the Lord, plans to prosper you and not to harm you, to give you hope and a future.",
		Author:             "Bible",
		ScriptureReference: "Jeremiah 29:11",
	}
}
