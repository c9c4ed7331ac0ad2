// Package main provides the dirview CLI for browsing a biobank network directory.
package main

func main() {
	Execute()
}
