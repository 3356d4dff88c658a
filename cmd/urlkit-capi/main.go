// Command urlkit-capi builds urlkit as a C shared library:
//
//	go build -buildmode=c-shared -o liburlkit.so ./cmd/urlkit-capi
//
// Handles are opaque uint64 values. Strings are returned through a
// string_container whose set_size and get_buffer callbacks are invoked in
// that order, once per successful call. The library reads its YAML
// configuration from the file named by $URLKIT_CAPI_CONFIG, if set.
package main

/*
#include <stddef.h>
#include <stdint.h>

typedef struct string_container {
	void *container;
	void (*fn_set_size)(void *container, size_t size);
	char *(*fn_get_buffer)(void *container);
} string_container;

static inline int urlkit_container_ok(string_container *c) {
	return c != NULL && c->container != NULL && c->fn_set_size != NULL && c->fn_get_buffer != NULL;
}

static inline void urlkit_container_set_size(string_container *c, size_t n) {
	c->fn_set_size(c->container, n);
}

static inline char *urlkit_container_get_buffer(string_container *c) {
	return c->fn_get_buffer(c->container);
}
*/
import "C"

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/reoring/urlkit"
	"github.com/reoring/urlkit/capi"
)

var arena *capi.Arena

func init() {
	cfg, err := capi.LoadConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "urlkit-capi: %v; using defaults\n", err)
		cfg = capi.DefaultConfig()
	}
	cfg.Apply()
	arena = capi.NewArena(cfg, cfg.Logger(os.Stderr))
}

// containerBuffer adapts a C string_container to capi.OutputBuffer.
type containerBuffer struct {
	c    *C.string_container
	size int
}

func (b *containerBuffer) SetSize(n int) {
	b.size = n
	C.urlkit_container_set_size(b.c, C.size_t(n))
}

func (b *containerBuffer) Buffer() []byte {
	p := C.urlkit_container_get_buffer(b.c)
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), b.size)
}

func output(c *C.string_container) capi.OutputBuffer {
	if C.urlkit_container_ok(c) == 0 {
		return nil
	}
	return &containerBuffer{c: c}
}

// input views caller memory for the duration of one call.
func input(p *C.char, n C.size_t) []byte {
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), int(n))
}

func code(c urlkit.Code) C.int32_t { return C.int32_t(c) }

func handle(h C.uint64_t) capi.Handle { return capi.Handle(h) }

//export urlkit_new
func urlkit_new(spec *C.char, n C.size_t) C.uint64_t {
	return C.uint64_t(arena.New(input(spec, n)))
}

//export urlkit_free
func urlkit_free(h C.uint64_t) { arena.Free(handle(h)) }

//export urlkit_get_spec
func urlkit_get_spec(h C.uint64_t, out *C.string_container) C.int32_t {
	return code(arena.GetSpec(handle(h), output(out)))
}

//export urlkit_get_scheme
func urlkit_get_scheme(h C.uint64_t, out *C.string_container) C.int32_t {
	return code(arena.GetScheme(handle(h), output(out)))
}

//export urlkit_get_username
func urlkit_get_username(h C.uint64_t, out *C.string_container) C.int32_t {
	return code(arena.GetUsername(handle(h), output(out)))
}

//export urlkit_get_password
func urlkit_get_password(h C.uint64_t, out *C.string_container) C.int32_t {
	return code(arena.GetPassword(handle(h), output(out)))
}

//export urlkit_get_host
func urlkit_get_host(h C.uint64_t, out *C.string_container) C.int32_t {
	return code(arena.GetHost(handle(h), output(out)))
}

//export urlkit_get_port
func urlkit_get_port(h C.uint64_t) C.int32_t { return C.int32_t(arena.GetPort(handle(h))) }

//export urlkit_get_path
func urlkit_get_path(h C.uint64_t, out *C.string_container) C.int32_t {
	return code(arena.GetPath(handle(h), output(out)))
}

//export urlkit_get_query
func urlkit_get_query(h C.uint64_t, out *C.string_container) C.int32_t {
	return code(arena.GetQuery(handle(h), output(out)))
}

//export urlkit_get_fragment
func urlkit_get_fragment(h C.uint64_t, out *C.string_container) C.int32_t {
	return code(arena.GetFragment(handle(h), output(out)))
}

//export urlkit_get_part
func urlkit_get_part(h C.uint64_t, flags C.uint32_t, out *C.string_container) C.int32_t {
	return code(arena.GetPart(handle(h), uint32(flags), output(out)))
}

//export urlkit_get_json
func urlkit_get_json(h C.uint64_t, out *C.string_container) C.int32_t {
	return code(arena.GetJSON(handle(h), output(out)))
}

//export urlkit_set_scheme
func urlkit_set_scheme(h C.uint64_t, v *C.char, n C.size_t) C.int32_t {
	return code(arena.SetScheme(handle(h), input(v, n)))
}

//export urlkit_set_username
func urlkit_set_username(h C.uint64_t, v *C.char, n C.size_t) C.int32_t {
	return code(arena.SetUsername(handle(h), input(v, n)))
}

//export urlkit_set_password
func urlkit_set_password(h C.uint64_t, v *C.char, n C.size_t) C.int32_t {
	return code(arena.SetPassword(handle(h), input(v, n)))
}

//export urlkit_set_host
func urlkit_set_host(h C.uint64_t, v *C.char, n C.size_t) C.int32_t {
	return code(arena.SetHost(handle(h), input(v, n)))
}

//export urlkit_set_host_and_port
func urlkit_set_host_and_port(h C.uint64_t, v *C.char, n C.size_t) C.int32_t {
	return code(arena.SetHostAndPort(handle(h), input(v, n)))
}

//export urlkit_set_port
func urlkit_set_port(h C.uint64_t, v *C.char, n C.size_t) C.int32_t {
	return code(arena.SetPort(handle(h), input(v, n)))
}

//export urlkit_set_port_no
func urlkit_set_port_no(h C.uint64_t, port C.int32_t) C.int32_t {
	return code(arena.SetPortNo(handle(h), int32(port)))
}

//export urlkit_set_path
func urlkit_set_path(h C.uint64_t, v *C.char, n C.size_t) C.int32_t {
	return code(arena.SetPath(handle(h), input(v, n)))
}

//export urlkit_set_query
func urlkit_set_query(h C.uint64_t, v *C.char, n C.size_t) C.int32_t {
	return code(arena.SetQuery(handle(h), input(v, n)))
}

//export urlkit_set_fragment
func urlkit_set_fragment(h C.uint64_t, v *C.char, n C.size_t) C.int32_t {
	return code(arena.SetFragment(handle(h), input(v, n)))
}

//export urlkit_resolve
func urlkit_resolve(h C.uint64_t, ref *C.char, n C.size_t, out *C.string_container) C.int32_t {
	return code(arena.Resolve(handle(h), input(ref, n), output(out)))
}

//export urlkit_common_base_spec
func urlkit_common_base_spec(h1, h2 C.uint64_t, out *C.string_container) C.int32_t {
	return code(arena.CommonBaseSpec(handle(h1), handle(h2), output(out)))
}

//export urlkit_relative_spec
func urlkit_relative_spec(h1, h2 C.uint64_t, out *C.string_container) C.int32_t {
	return code(arena.RelativeSpec(handle(h1), handle(h2), output(out)))
}

func main() {}
