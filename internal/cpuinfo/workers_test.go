package cpuinfo

import "testing"

func TestDefaultWorkersAtLeastOne(t *testing.T) {
	if DefaultWorkers() < 1 {
		t.Error("DefaultWorkers() should never return less than 1")
	}
}

func TestHasWideSIMDDoesNotPanic(t *testing.T) {
	_ = HasWideSIMD()
}
