// Package templates renders notification emails as templ components.
//
// ContactNotification and ApplicationNotification produce the HTML bodies;
// ContactText and ApplicationText produce the plain-text alternatives.
// Field values are escaped on output except MessageHTML, which callers pass
// already escaped by the sanitizer.
package templates
