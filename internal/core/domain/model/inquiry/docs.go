// Package inquiry contains the customer Inquiry aggregate: a contact-form
// submission handled by the back office. Inquiries may be anonymous and are
// only ever listed and mutated by admins.
//
// The one nontrivial invariant is the responded-at stamp: it is set exactly
// once, the first time the inquiry leaves the "new" status, and never cleared
// or overwritten afterwards.
package inquiry
