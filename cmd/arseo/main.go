// Package main provides the arseo command, an SEO checker for Arabic articles.
//
// Usage:
//
//	arseo analyze --primary "القهوة العربية" article.md
//	arseo phrases article.md
//	arseo replace --find "قهوة" --with "القهوة" article.md
//
// See --help for all available options.
package main

func main() {
	Execute()
}
