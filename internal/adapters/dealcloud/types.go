package dealcloud

// Wire shapes for the DealCloud schema REST API. The SDK payloads carry more
// attributes than these; only what the verifier consumes is decoded, and the
// translation into domain values happens once, in the mapper.

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type objectEntry struct {
	ID           int    `json:"id"`
	APIName      string `json:"apiName"`
	Name         string `json:"name"`
	SingularName string `json:"singularName"`
	PluralName   string `json:"pluralName"`
}

type choiceValue struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type fieldEntry struct {
	ID           int           `json:"id"`
	APIName      string        `json:"apiName"`
	Name         string        `json:"name"`
	DisplayName  string        `json:"displayName"`
	FieldType    int           `json:"fieldType"`
	IsRequired   bool          `json:"isRequired"`
	ChoiceValues []choiceValue `json:"choiceValues"`

	// EntryLists holds the ids of the objects a reference field may point
	// to. The mapper resolves them to object names.
	EntryLists []int `json:"entryLists"`
}

type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
