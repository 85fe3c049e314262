// Package ui is the Bubble Tea front end of the catalog.
//
// # Layout
//
// Two bars sit on top: a status header (product count, matches, sort, page,
// last store error) and a command bar with the key hints of the focused area.
// Below them are the search box, the product list (three cards per page) and
// the create/edit form, followed by the page strip.
//
// # State
//
// Model owns every piece of transient view state: search text, form contents,
// the product loaded for editing, confirmation visibility, page, sort key and
// direction. None of it is persisted. The product collection lives in
// state.Store; after every mutation the model takes a fresh snapshot and runs
// it through catalog.Filter, Sorter.Sort and catalog.Paginate again.
//
// # Form
//
// The form has a Create mode and an Edit mode. Submitting validates the draft
// with catalog.Validate; the first failing rule is shown under the fields and
// nothing is written. Delete loads the product into the form and opens the
// confirmation dialog. Confirming removes the id held by the form; dismissing
// only hides the dialog and leaves the form populated.
//
// # Overlays
//
// Help (?), the activity log (a) and the delete confirmation replace the main
// view while open. The activity overlay reads the log file through logtail.
package ui
