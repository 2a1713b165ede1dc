// Package chores solves the smaller daily puzzles of the expedition:
// counting calories, scoring rock paper scissors, reorganizing rucksacks,
// cleaning up camp sections, rearranging crate stacks, finding the markers
// of a communication stream, and following the knots of a rope.
package chores
