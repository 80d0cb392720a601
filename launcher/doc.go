// Package launcher finds the newest installed version of an application and
// starts its executable, using path templates from the paths file.
//
// The launcher reads two entries from one section of the paths file: a
// directory holding one subdirectory per installed version, and an executable
// template containing the version variable.
//
//	[Roblox]
//	versions         = |Windows|LocalAppData|/Roblox/Versions
//	RobloxPlayerBeta = |Roblox|versions|/?version?/RobloxPlayerBeta.exe
//
// The newest version is the subdirectory with the latest modification time.
// Its name is bound into the executable template, and the executable is started
// detached if it exists.
//
// Which section, keys and variable are used comes from the optional [Launcher]
// section; see Config for the keys and their defaults.
package launcher
