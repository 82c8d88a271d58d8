// Command shelfmark maintains the component catalog's identifier registry,
// renders printable labels, and packs them into sheets in a stable order.
package main
