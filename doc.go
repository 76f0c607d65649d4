// Package cssengine compiles style declarations into deduplicated class
// names at runtime.
//
// An Engine turns an ordered Declaration into CSS rules, allocates a stable
// class name for it and appends the rules either to a live stylesheet owned
// by a Document or to an ordered buffer for server-side rendering:
//
//	engine := cssengine.New(cssengine.Config{})
//	classes := engine.CreateStyles("Button",
//		cssengine.Static("root", cssengine.Declaration{
//			{Key: "padding", Value: 8},
//			{Key: ":hover", Value: cssengine.Declaration{{Key: "color", Value: "blue"}}},
//		}),
//	)
//	classes.Get("root") // "button-root"
//	engine.StyleTag()   // <style id="cssengine-styles">.button-root{padding:8px;}...</style>
//
// # Caches
//
// Static styles share a class with any earlier declaration of the same
// content. Parametric styles keep a bounded LRU of argument keys per
// generator. Themes are composed by the theme package, which memoizes
// compositions by content.
//
// # Declaration files
//
// Generate and Lint work over YAML declaration files, the input of the
// cssengine command:
//
//	component: Button
//	styles:
//	  root:
//	    padding: 8
//	    ":hover": { color: "{{ .colors.primary }}" }
package cssengine
