package entity

// PostcardTemplate is a static visual style for a postcard.
type PostcardTemplate struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	BorderColor     string `json:"border_color"`
	BackgroundColor string `json:"background_color"`
}

// PostcardTemplates is the built-in catalogue; the first entry is the default.
var PostcardTemplates = []PostcardTemplate{
	{ID: 1, Name: "Classic Blue", BorderColor: "#0A84FF", BackgroundColor: "rgba(10,132,255,0.10)"},
	{ID: 2, Name: "Nature Green", BorderColor: "#30D158", BackgroundColor: "rgba(48,209,88,0.10)"},
	{ID: 3, Name: "Sunny Yellow", BorderColor: "#FF9F0A", BackgroundColor: "rgba(255,214,10,0.10)"},
	{ID: 4, Name: "Elegant Pink", BorderColor: "#FF375F", BackgroundColor: "rgba(255,55,95,0.03)"},
}

// FindPostcardTemplate returns the template with the given id, or the default when id is zero.
func FindPostcardTemplate(id int) (PostcardTemplate, bool) {
	if id == 0 {
		return PostcardTemplates[0], true
	}
	for _, t := range PostcardTemplates {
		if t.ID == id {
			return t, true
		}
	}

	return PostcardTemplate{}, false
}

// Postcard is a rendered postcard as shown in the composer preview.
type Postcard struct {
	Template PostcardTemplate `json:"template"`
	Message  string           `json:"message"`
	ToName   string           `json:"to_name"`
	FromName string           `json:"from_name"`
}
