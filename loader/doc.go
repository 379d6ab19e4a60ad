// Package loader provides the default openapi.LoaderContext: it reads
// external documents from disk or over HTTP, caches them, and names the
// component slots they are stored under.
//
//	lc, err := loader.New(loader.WithBaseDir(filepath.Dir(specPath)))
//	if err != nil {
//	    return err
//	}
//	if _, err := doc.ExternallyDereference(ctx, lc); err != nil {
//	    return err
//	}
//
// Each document is fetched once per Context; concurrent requests for the
// same document share one fetch. Fetched documents have their references
// rebased onto their own location, so that a value moved into the root
// document's components still points where it pointed before.
//
// File references must stay inside the base directory. HTTP references are
// refused unless WithAllowHTTP or WithBaseURL is given.
package loader
