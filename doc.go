// Package gridsearch is a small playground for classical state-space search:
// pathfinding on 4-connected grids and minimax on tic-tac-toe.
//
// 🚀 What is inside?
//
//	• gridgraph/ — Cell, Move, Path and Grid types, bounds and obstacle checks,
//	               connected regions and an ASCII maze parser
//	• pathfind/  — seven interchangeable strategies sharing one signature:
//	               random walk, BFS, DFS, IDS, UCS, greedy best-first, A*
//	• tictactoe/ — the game model (player, actions, result, winner, terminal,
//	               utility) and an exhaustive minimax player
//
// ✨ Why use it?
//
//   - One signature for every pathfinder, so strategies can be swapped and compared
//   - A rich Search entry point with hooks, context cancellation and expansion counts
//   - Deterministic tie-breaking; seeded random walks for reproducible runs
//
// Quick ASCII example (S start, G goal, # wall):
//
//	S . .
//	. # .
//	. . G
//
// BFS answers "down down right right", A* answers "right right down down";
// both are shortest.
//
// Two demo programs live under cmd/: gridsearch compares the strategies on a
// maze, tictactoe plays a game of minimax against itself.
//
//	go get github.com/katalvlaran/gridsearch
package gridsearch
