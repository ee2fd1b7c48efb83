package decimal

import (
	"fmt"
	"math/big"
	"sync"
)

// powersOfTen caches 10^n for small, frequently requested n so that
// alignment, rounding and digit-shift operations do not repeatedly pay
// for big.Int.Exp. Guarded the same way christopherganda/go-bigdecimal
// guards its own powersOfTen table.
var (
	powersOfTenMu sync.RWMutex
	powersOfTen   = make(map[int32]*big.Int, 128)
)

func init() {
	for i := int32(0); i <= 64; i++ {
		pow10(i)
	}
}

// pow10 returns 10^n for n >= 0.
func pow10(n int32) *big.Int {
	if n < 0 {
		panic(fmt.Sprintf("decimal: pow10 called with negative exponent %d", n))
	}

	powersOfTenMu.RLock()
	if p, ok := powersOfTen[n]; ok {
		powersOfTenMu.RUnlock()
		return p
	}
	powersOfTenMu.RUnlock()

	powersOfTenMu.Lock()
	defer powersOfTenMu.Unlock()
	if p, ok := powersOfTen[n]; ok {
		return p
	}
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	powersOfTen[n] = p
	return p
}
