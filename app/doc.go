// Package app runs the draw/read/apply loop shared by both programs and
// builds their cobra commands.
//
// Each iteration performs exactly one Draw and one blocking ReadEvent. The
// event is translated into an input.Command and applied to the Model; the
// loop ends once the model reports Exited.
package app
