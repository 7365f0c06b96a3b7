/*
Package theme renders html/template files from a directory of themes.

Templates are addressed by dotted or slashed names relative to the active
theme ("pages.home" is <root>/<theme>/pages/home.html). A template can wrap
itself in a layout with extend, capture named blocks with start/stop, read
them back with yield, and include other templates with partial:

	{{ extend "layouts.main" }}
	{{ start "title" }}Home{{ stop }}
	<h1>Hello {{ .name }}</h1>
	{{ partial "partials.card" "title" "News" }}

The layout receives the rendered page as .content:

	<title>{{ yield "title" "Untitled" }}</title>
	<link rel="stylesheet" href="{{ asset "css/site.css" }}">
	<main>{{ .content }}</main>

Only one layout level is applied; extend calls made by a layout are ignored.
*/
package theme
