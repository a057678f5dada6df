// Package testutil provides fixtures for testing templater components.
//
// Template trees are declared inline as a map of relative path to content
// and written either to an in-memory filesystem or to a real temp dir:
//
//	fsys := testutil.MemTree(t, "/src", map[string]string{
//		"app.conf": "#if docker\nimage\n#endif\n",
//	})
//
// IsolateXDG points the per-user config and log locations at temp dirs so
// tests never read or write the developer's real files.
package testutil
