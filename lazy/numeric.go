package lazy

// Fibonacci yields the first n Fibonacci numbers starting from 0.
// Values past the 92nd overflow int.
func Fibonacci(n int) Iterator[int] {
	return &fibonacci{remaining: n, next: 0, after: 1}
}

type fibonacci struct {
	remaining   int
	next, after int
	value       int
}

func (f *fibonacci) Next() bool {
	if f.remaining <= 0 {
		return false
	}
	f.remaining--
	f.value = f.next
	f.next, f.after = f.after, f.next+f.after
	return true
}

func (f *fibonacci) Value() int   { return f.value }
func (f *fibonacci) Err() error   { return nil }
func (f *fibonacci) Close() error { f.remaining = 0; return nil }

// Primes yields every prime p with 2 <= p <= upTo in ascending order.
func Primes(upTo int) Iterator[int] {
	return &primes{candidate: 2, upTo: upTo}
}

type primes struct {
	candidate int
	upTo      int
	value     int
}

func (p *primes) Next() bool {
	for ; p.candidate <= p.upTo; p.candidate++ {
		if isPrime(p.candidate) {
			p.value = p.candidate
			p.candidate++
			return true
		}
	}
	return false
}

func (p *primes) Value() int   { return p.value }
func (p *primes) Err() error   { return nil }
func (p *primes) Close() error { p.upTo = p.candidate - 1; return nil }

func isPrime(num int) bool {
	if num < 2 {
		return false
	}
	for i := 2; i*i <= num; i++ {
		if num%i == 0 {
			return false
		}
	}
	return true
}

// Range yields start, start+1, ..., end-1.
func Range(start, end int) Iterator[int] {
	return &intRange{current: start, end: end}
}

type intRange struct {
	current, end int
	value        int
}

func (r *intRange) Next() bool {
	if r.current >= r.end {
		return false
	}
	r.value = r.current
	r.current++
	return true
}

func (r *intRange) Value() int   { return r.value }
func (r *intRange) Err() error   { return nil }
func (r *intRange) Close() error { r.current = r.end; return nil }
