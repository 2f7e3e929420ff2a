// Package catalog builds the exam document catalog.
//
// A build runs three passes in a fixed order: the remote GitHub listing
// ("База з ЦТ"), the regular bases tree ("Звичайні Базі") and the older
// database tree ("Старше ЦТ"). Each pass turns raw file references into
// Entry values using the title normalizer in textutil and the rule tables in
// classify. Local paths are read through named PathSchema accessors, so a
// file nested too shallowly is skipped with ErrLayout instead of producing
// half-filled entries.
//
// Remote failures never abort a build: the remote pass logs a warning and
// contributes nothing. WriteJSON persists the result atomically and
// AcquireLock keeps two builds from racing on the same artifact.
package catalog
