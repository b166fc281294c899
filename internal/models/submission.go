package models

// NotApplicable is sent in whichever source reference does not apply.
const NotApplicable = "NULL"

// SubmissionPayload is the body posted to the generation endpoint.
type SubmissionPayload struct {
	RepositoryReference string `json:"repository_reference"`
	SecondaryReference  string `json:"secondary_reference"`
	ProviderID          string `json:"provider_id"`
	ModelID             string `json:"model_id"`
	Secret              string `json:"secret"`
	Prompt              string `json:"prompt"`
}

// GenerationResponse accepts both field-name variants returned by the endpoint.
type GenerationResponse struct {
	TextContent   string `json:"text_content"`
	VisualContent string `json:"visual_content"`
	Documentation string `json:"documentation"`
	Diagram       string `json:"diagram"`
}

// RepositoryProbe summarizes a remote repository listing.
type RepositoryProbe struct {
	URL           string `json:"url"`
	DefaultBranch string `json:"defaultBranch"`
	Branches      int    `json:"branches"`
	Tags          int    `json:"tags"`
}
