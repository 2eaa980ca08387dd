// Package aggregates defines domain-facing aggregate contracts.
//
// Contracts here avoid persistence and transport details. A quiz together with its
// questions, answers and results is one aggregate: it is written in one transaction
// and read back as one consistent snapshot.
package aggregates
