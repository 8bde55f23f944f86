// Package errors provides the classified error foundation for docforge.
//
// Every failure surfaced across package boundaries is a *ClassifiedError
// carrying a category (what subsystem failed), a severity, and optional
// structured context. Categories map one-to-one onto the generation
// pipeline's failure taxonomy: manifest problems, filesystem problems,
// budget violations, and the single wrapped "generation failed" error the
// orchestrator produces.
package errors
