// Package sm2 implements the SuperMemo 2 (SM-2) spaced repetition algorithm.
//
// sm2 computes review scheduling metadata for a single learnable item:
// given the item's repetition count, its easiness factor, and a new
// quality-of-recall grade, it derives the updated state and the number of
// days until the item is next due. Persisting items, mapping day counts to
// calendar dates, and batching across many items are left to the caller.
//
// Basic usage:
//
//	item := sm2.NewItem()
//	for _, raw := range []int{4, 3, 5} {
//	    q, err := sm2.NewQuality(raw)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    item, err = item.Review(q)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	fmt.Println(item.Interval()) // 15
package sm2
