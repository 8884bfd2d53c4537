// Package main implements the guestbookctl CLI.
package main

func main() {
	Execute()
}
