package domain

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/onsi/gomega"
)

func TestKindOf(t *testing.T) {
	RegisterTestingT(t)

	Expect(KindOf(E(KindNotFound, "Todo not found"))).To(Equal(KindNotFound))
	Expect(KindOf(E(KindConflict, "User already exists"))).To(Equal(KindConflict))
	Expect(KindOf(errors.New("plain"))).To(Equal(KindUnknown))
	Expect(KindOf(nil)).To(Equal(KindUnknown))
}

func TestKindOfWrapped(t *testing.T) {
	RegisterTestingT(t)

	inner := E(KindNotFound, "Todo not found")
	wrapped := fmt.Errorf("while updating: %w", inner)

	Expect(KindOf(wrapped)).To(Equal(KindNotFound))
	Expect(IsNotFound(wrapped)).To(BeTrue())
}

func TestErrorMessageAndUnwrap(t *testing.T) {
	RegisterTestingT(t)

	cause := errors.New("connection refused")
	err := E(KindStore, "Failed to fetch todos", cause)

	Expect(err.Error()).To(Equal("Failed to fetch todos: connection refused"))
	Expect(errors.Unwrap(err)).To(Equal(cause))

	bare := E(KindValidation, "Title is required")
	Expect(bare.Error()).To(Equal("Title is required"))
}
