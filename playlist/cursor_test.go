package playlist

import (
	"sort"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCursor(t *testing.T) {
	Convey("Given a cursor over three entries", t, func() {
		c := NewCursor(3)

		Convey("The first draw is index 0", func() {
			i, err := c.Next()
			So(err, ShouldBeNil)
			So(i, ShouldEqual, 0)
			So(c.Issued(), ShouldEqual, 1)
		})

		Convey("Draws wrap around", func() {
			var got []int
			for range 7 {
				i, _ := c.Next()
				got = append(got, i)
			}
			So(got, ShouldResemble, []int{0, 1, 2, 0, 1, 2, 0})
		})

		Convey("Concurrent draws are unique and gap-free", func() {
			const callers = 3 * 50
			counts := make([]int, 3)
			var mu sync.Mutex
			var wg sync.WaitGroup

			for range callers {
				wg.Add(1)
				go func() {
					defer wg.Done()
					i, err := c.Next()
					if err != nil {
						return
					}
					mu.Lock()
					counts[i]++
					mu.Unlock()
				}()
			}
			wg.Wait()

			So(counts, ShouldResemble, []int{50, 50, 50})
			So(c.Issued(), ShouldEqual, callers)
		})
	})

	Convey("Concurrent draws over a long playlist form a contiguous range", t, func() {
		c := NewCursor(1000)
		results := make(chan int, 200)
		var wg sync.WaitGroup
		for range 200 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				i, _ := c.Next()
				results <- i
			}()
		}
		wg.Wait()
		close(results)

		var got []int
		for i := range results {
			got = append(got, i)
		}
		sort.Ints(got)
		for i, v := range got {
			So(v, ShouldEqual, i)
		}
	})

	Convey("An empty cursor reports ErrEmpty", t, func() {
		_, err := NewCursor(0).Next()
		So(err, ShouldEqual, ErrEmpty)
	})
}
