// Package facet composes free-text matching with discrete filters and a
// final ordering stage over an in-memory record set.
//
// The pipeline applies its stages in a fixed order: free-text query, format
// equality, tag-set membership (AND/OR), then a stable locale-aware sort.
// Each stage narrows or reorders the previous stage's output; no stage
// widens. Pagination is a separate pure slicing step so callers control page
// state (including when the page resets, see Criteria.ForcesPageReset).
//
// All functions are pure over immutable inputs. Re-running a pipeline with
// identical criteria on an unchanged record set yields identical output, so
// invoking it on every keystroke is correct, if not always cheapest.
package facet
