// Package util provides the filesystem plumbing shared by the respak commands.
//
// It covers three areas:
//
// File operations:
//   - SizeOf reports sizes straight from the OS, never from a cached view
//   - CopyFile and RemoveIfExists for pipeline steps that move payloads around
//
// Job discovery:
//   - ScanPack walks an asset tree and builds pack jobs, folding companion
//     files (theme.flac.ogg, wordPackDict.dat.xml) onto the name the packed
//     resource is stored under
//   - UnpackJobs rebuilds unpack jobs from a saved index
//
// Index persistence:
//   - Index is the JSON record written next to the packed files, holding the
//     metadata table, the codec name and the tool version
//   - WriteJSONFile and ReadJSONFile for the JSON files the tool produces
package util
