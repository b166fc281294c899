package prompt

// Section is a unit of documentation or report content the user can opt into.
type Section struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// LiteratureSurveyID is the report section that enables the literature instruction.
const LiteratureSurveyID = "literature_survey"

var codeSections = []Section{
	{ID: "code_overview", Label: "Code Overview", Description: "High-level summary of the codebase structure and organization"},
	{ID: "api_endpoints", Label: "API Endpoints", Description: "Document API routes, methods, parameters, and responses"},
	{ID: "function_reference", Label: "Function Reference", Description: "Detailed documentation of key functions and methods"},
	{ID: "component_library", Label: "Component Library", Description: "Catalog of UI components with props and usage examples"},
	{ID: "data_models", Label: "Data Models", Description: "Document database schema, types, and data flow"},
	{ID: "config_options", Label: "Configuration Options", Description: "Document environment variables and configuration settings"},
	{ID: "setup_guide", Label: "Setup Guide", Description: "Instructions for setting up development environment"},
	{ID: "troubleshooting", Label: "Troubleshooting", Description: "Common issues and their solutions"},
	{ID: "code_examples", Label: "Code Examples", Description: "Practical examples for common use cases"},
	{ID: "data_flow", Label: "Data Flow Description", Description: "How data moves between components"},
	{ID: "code_complexity", Label: "Code Complexity Estimates", Description: "Complexity estimates for the main algorithms"},
}

var reportSections = []Section{
	{ID: "abstract", Label: "Abstract", Description: "Brief summary of the entire project"},
	{ID: "introduction", Label: "Introduction", Description: "Overview of the problem and solution"},
	{ID: LiteratureSurveyID, Label: "Literature Survey", Description: "Review of related work and technologies"},
	{ID: "methodology", Label: "Methodology", Description: "Approach and methods used"},
	{ID: "proposed_system", Label: "Proposed System", Description: "Detailed description of the system architecture"},
	{ID: "expected_results", Label: "Expected Results", Description: "Expected outcomes and performance"},
	{ID: "conclusion", Label: "Conclusion", Description: "Summary of findings and implementation"},
	{ID: "future_scope", Label: "Future Scope", Description: "Potential future improvements and extensions"},
	{ID: "references", Label: "References", Description: "Citations and references used"},
}

var (
	codeLabels   = labelIndex(codeSections)
	reportLabels = labelIndex(reportSections)
)

func labelIndex(sections []Section) map[string]string {
	out := make(map[string]string, len(sections))
	for _, s := range sections {
		out[s.ID] = s.Label
	}
	return out
}

// CodeSections lists the known code documentation sections in display order.
func CodeSections() []Section {
	return append([]Section(nil), codeSections...)
}

// ReportSections lists the known academic report sections in display order.
func ReportSections() []Section {
	return append([]Section(nil), reportSections...)
}

// CodeLabel resolves a code section id; unknown ids are returned unchanged.
func CodeLabel(id string) string {
	if label, ok := codeLabels[id]; ok {
		return label
	}
	return id
}

// ReportLabel resolves a report section id; unknown ids are returned unchanged.
func ReportLabel(id string) string {
	if label, ok := reportLabels[id]; ok {
		return label
	}
	return id
}
