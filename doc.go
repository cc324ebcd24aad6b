// Package postwalk solves the Route Inspection Problem (Chinese Postman)
// over real street networks: given a graph of road segments, compute the
// shortest closed walk that traverses every required segment at least
// once, ready to be exported as a GPS track.
//
// 🚀 What is postwalk?
//
//	A focused, pure-Go pipeline that brings together:
//		• streetgraph/ — arena-backed undirected multigraph of intersections
//		  and road segments, with Dijkstra shortest paths and connectivity
//		  checks over the required-coverage subgraph
//		• balance/     — dead-end pre-optimization and exact minimum-weight
//		  perfect matching that augments the graph to even degree
//		• circuit/     — Hierholzer Eulerian circuit construction with
//		  deterministic start selection
//		• geom/        — bearings, directional linestrings, merged path
//		  geometry and bounding boxes (github.com/paulmach/orb)
//		• track/       — tagged, direction-annotated linestring assembly
//		  with optional simplification
//		• route/       — the one-call orchestrator with progress callbacks
//		  and cooperative cancellation
//
// ✨ Why choose postwalk?
//
//   - Deterministic – identical input graphs produce identical circuits
//   - Honest failures – disconnected or infeasible inputs fail loudly
//     with typed sentinel errors, never a silently partial route
//   - Library-first – no HTTP, no file formats, no rendering; the
//     contract ends at an ordered sequence of tagged linestrings
//
// Control flow:
//
//	streetgraph → (optional) dead-end optimizer → degree balancer →
//	circuit builder → track assembler → tagged linestrings + bound
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D──E   (E is a cul-de-sac: traversed out and back)
//
// Dive into route.Generate for the full pipeline, or use the packages
// individually; each one documents its own options, errors and
// complexity.
//
//	go get github.com/katalvlaran/postwalk
package postwalk
