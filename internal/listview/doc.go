// Package listview holds the client-side list pipeline of the terminal
// client: a text filter over company and job title, a stable single-column
// sort, and 1-based pagination. [View] bundles the three into a value-type
// state that the list screen keeps between key presses.
//
// [Query] is the part of the list state that is sent to the server and
// triggers a refetch when it changes. The text search never leaves the client.
package listview
