package memory

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/gomega"
)

var ctx = context.Background()

func TestSetAndGet(t *testing.T) {
	RegisterTestingT(t)

	cache := New()
	defer cache.Close()

	err := cache.Set(ctx, "key", []byte("value"), time.Minute)
	Expect(err).To(BeNil())

	data, err := cache.Get(ctx, "key")
	Expect(err).To(BeNil())
	Expect(string(data)).To(Equal("value"))
}

func TestGetMissReturnsNil(t *testing.T) {
	RegisterTestingT(t)

	cache := New()
	defer cache.Close()

	data, err := cache.Get(ctx, "missing")
	Expect(err).To(BeNil())
	Expect(data).To(BeNil())
}

func TestDelete(t *testing.T) {
	RegisterTestingT(t)

	cache := New()
	defer cache.Close()

	cache.Set(ctx, "key", []byte("value"), time.Minute)
	Expect(cache.Delete(ctx, "key")).To(BeNil())

	data, _ := cache.Get(ctx, "key")
	Expect(data).To(BeNil())
}

func TestDeleteByPrefix(t *testing.T) {
	RegisterTestingT(t)

	cache := New()
	defer cache.Close()

	cache.Set(ctx, "todos:user:1", []byte("a"), time.Minute)
	cache.Set(ctx, "todos:user:2", []byte("b"), time.Minute)
	cache.Set(ctx, "other", []byte("c"), time.Minute)

	Expect(cache.DeleteByPrefix(ctx, "todos:user:")).To(BeNil())

	one, _ := cache.Get(ctx, "todos:user:1")
	two, _ := cache.Get(ctx, "todos:user:2")
	other, _ := cache.Get(ctx, "other")

	Expect(one).To(BeNil())
	Expect(two).To(BeNil())
	Expect(string(other)).To(Equal("c"))
}

func TestExpiry(t *testing.T) {
	RegisterTestingT(t)

	cache := New()
	defer cache.Close()

	cache.Set(ctx, "key", []byte("value"), 10*time.Millisecond)

	time.Sleep(20 * time.Millisecond)

	data, _ := cache.Get(ctx, "key")
	Expect(data).To(BeNil())
}
