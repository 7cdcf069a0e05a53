// Package borderize generates debugging stylesheets that draw a coloured
// border around every element of an HTML page.
//
// Each distinct tag name, class and id found in the markup becomes a label.
// Every label gets one rule, coloured from a fixed palette first and with
// random colours once the palette runs out:
//
//	body { border: 3px solid #0400ff; }
//	.main { border: 3px solid #ff0000; }
//	#header { border: 3px solid #00ff22; }
//
// # Generation
//
//	config := borderize.Config{
//		SourceDir: "site",
//		Input:     "index.html",
//	}
//	result, err := borderize.Generate(config)
//
// Input may also be a glob ("pages/**/*.html"); labels from all matches are
// merged into one stylesheet. Set OutputName to "-" to write to Stdout.
//
// # Inspection
//
// Inspect prints the element tree with the labels each element contributes,
// which helps when tuning IgnoreTags, Scope or the label filters.
//
// # CLI Tool
//
// Install the CLI:
//
//	go install github.com/yacobolo/borderize/cmd/borderize@latest
//
// Generate a stylesheet:
//
//	borderize index.html
//	borderize -s site -d site/css -o debug.css index.html
//	borderize --no-attributes --format json -o - index.html
package borderize
