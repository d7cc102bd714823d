// Package util provides small parsing helpers shared by configuration code.
package util
