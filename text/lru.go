// SPDX-License-Identifier: Unlicense OR MIT

package text

// lineCache is a least recently used cache of line layouts.
type lineCache struct {
	m          map[lineKey]*lineElem
	head, tail *lineElem
}

type lineElem struct {
	next, prev *lineElem
	key        lineKey
	lines      []Line
}

type lineKey struct {
	params Parameters
	str    string
}

const maxSize = 1000

func (l *lineCache) Get(k lineKey) ([]Line, bool) {
	if lt, ok := l.m[k]; ok {
		l.remove(lt)
		l.insert(lt)
		return lt.lines, true
	}
	return nil, false
}

func (l *lineCache) Put(k lineKey, lines []Line) {
	if l.m == nil {
		l.m = make(map[lineKey]*lineElem)
		l.head = new(lineElem)
		l.tail = new(lineElem)
		l.head.prev = l.tail
		l.tail.next = l.head
	}
	if old, ok := l.m[k]; ok {
		l.remove(old)
	}
	val := &lineElem{key: k, lines: lines}
	l.m[k] = val
	l.insert(val)
	if len(l.m) > maxSize {
		oldest := l.tail.next
		l.remove(oldest)
		delete(l.m, oldest.key)
	}
}

func (l *lineCache) remove(lt *lineElem) {
	lt.next.prev = lt.prev
	lt.prev.next = lt.next
}

func (l *lineCache) insert(lt *lineElem) {
	lt.next = l.head
	lt.prev = l.head.prev
	lt.prev.next = lt
	lt.next.prev = lt
}
