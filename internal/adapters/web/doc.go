// Package web renders the project board as server-side HTML.
//
// It holds the render components of the board: one ProjectList per status
// that re-renders its fragment on every state change and pushes it to
// watching streams, the ProjectInput form, and the Page that assembles them.
// Markup lives in embedded html/template files; the browser script that
// handles drag-and-drop and live updates is served from Static.
package web
