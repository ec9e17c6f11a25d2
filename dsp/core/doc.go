// Package core holds small numeric helpers shared by the signal packages.
package core
