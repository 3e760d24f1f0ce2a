// Package memcount routes the engine's heap through counting allocator
// hooks so tests can check that every block the engine allocates is freed.
package memcount

/*
#cgo LDFLAGS: -lcapstone
#include <stdint.h>
#include <stdio.h>
#include <stdlib.h>
#include <capstone/capstone.h>

static long memcount_blocks;
static long memcount_allocs;

static void memcount_add(long n) {
	__atomic_add_fetch(&memcount_blocks, n, __ATOMIC_SEQ_CST);
	if (n > 0) {
		__atomic_add_fetch(&memcount_allocs, n, __ATOMIC_SEQ_CST);
	}
}

static void *memcount_malloc(size_t size) {
	void *p = malloc(size);
	if (p != NULL) {
		memcount_add(1);
	}
	return p;
}

static void *memcount_calloc(size_t n, size_t size) {
	void *p = calloc(n, size);
	if (p != NULL) {
		memcount_add(1);
	}
	return p;
}

static void *memcount_realloc(void *old, size_t size) {
	void *p = realloc(old, size);
	if (old == NULL && p != NULL) {
		memcount_add(1);
	} else if (old != NULL && size == 0) {
		memcount_add(-1);
	}
	return p;
}

static void memcount_free(void *p) {
	if (p != NULL) {
		memcount_add(-1);
	}
	free(p);
}

static cs_err memcount_install(void) {
	cs_opt_mem mem = {
		.malloc = memcount_malloc,
		.calloc = memcount_calloc,
		.realloc = memcount_realloc,
		.free = memcount_free,
		.vsnprintf = vsnprintf,
	};
	return cs_option(0, CS_OPT_MEM, (size_t)(uintptr_t)&mem);
}

static long memcount_load_blocks(void) {
	return __atomic_load_n(&memcount_blocks, __ATOMIC_SEQ_CST);
}

static long memcount_load_allocs(void) {
	return __atomic_load_n(&memcount_allocs, __ATOMIC_SEQ_CST);
}
*/
import "C"

import (
	"sync"

	"github.com/pkg/errors"
)

var (
	once       sync.Once
	installErr error
)

// Install replaces the engine allocator with the counting hooks. It must run
// before the first engine is opened; later calls return the first result.
func Install() error {
	once.Do(func() {
		if code := C.memcount_install(); code != C.CS_ERR_OK {
			installErr = errors.Errorf("cs_option(CS_OPT_MEM) failed: %d", int(code))
		}
	})
	return installErr
}

// Blocks returns the number of engine blocks allocated and not yet freed.
func Blocks() int64 { return int64(C.memcount_load_blocks()) }

// Allocs returns the number of engine blocks allocated so far.
func Allocs() int64 { return int64(C.memcount_load_allocs()) }
