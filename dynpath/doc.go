// Package dynpath resolves path templates declared in a configuration store.
//
// A configuration value may contain two kinds of markers:
//
//	?name?            an inline variable, bound later by the caller
//	|section|key|     a reference, replaced by that entry's resolved value
//
// Resolver.Resolve flattens references recursively and returns a Path whose
// template writes unbound variables as <name>:
//
//	[Roblox]
//	versions         = C:/Roblox/Versions
//	RobloxPlayerBeta = |Roblox|versions|/?version?/RobloxPlayerBeta.exe
//
//	player, _ := resolver.Resolve("Roblox", "RobloxPlayerBeta")
//	player.Raw()       // "C:/Roblox/Versions/<version>/RobloxPlayerBeta.exe"
//	player.Variables() // ["version"]
//
//	bound, _ := player.Bind(map[string]string{"version": "version-1a2b"})
//	bound.String()     // "C:/Roblox/Versions/version-1a2b/RobloxPlayerBeta.exe"
//
// A Path's variables are the <name> tokens of its template, in order of first
// appearance in the expanded template; BindPositional assigns values in that
// order. A <name> written literally in a configuration value is a variable
// like any ?name? marker.
//
// Filesystem queries (ListDir, Content, Dirs, Files) only work on concrete Paths
// and return ErrNotFound otherwise. Each call reads the directory once.
package dynpath
