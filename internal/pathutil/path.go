package pathutil

import "regexp"

// TemplateParamRegex matches template parameters like {paramName} in path
// templates and server URLs. It captures the parameter name inside the braces.
var TemplateParamRegex = regexp.MustCompile(`\{([^}]+)\}`)

// TemplateParams returns the parameter names in a templated string, in order
// of appearance.
func TemplateParams(template string) []string {
	matches := TemplateParamRegex.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}
