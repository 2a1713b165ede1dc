// Package monkey simulates the monkeys playing keep away with your items.
//
// Each monkey inspects the items it holds in the order it caught them,
// changing the item's worry level by its operation, optionally relieving it
// (floor division by 3), and throwing it to one of two other monkeys depending
// on whether the new level is divisible by its test divisor. Worry levels are
// kept modulo the least common multiple of every divisor, which leaves every
// divisibility test unchanged.
package monkey
