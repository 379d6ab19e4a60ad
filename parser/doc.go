// Package parser reads OpenAPI 3.x documents from files, URLs, readers and
// byte slices into the typed model of package openapi.
//
// YAML and JSON are both accepted; JSON is read by the YAML decoder.
// References are kept as written. Resolving them is the job of
// openapi.Document.Dereferenced for internal references and of
// openapi.Document.ExternallyDereference, usually driven by package loader,
// for references into other documents.
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("openapi.yaml"))
//	if err != nil {
//	    return err
//	}
//	doc := result.Document
//
// The [Logger] interface is shared with package loader. [NewSlogAdapter]
// adapts a *slog.Logger.
package parser
