package filter

import "time"

// Modifiers return an updated copy of the Set. Changing anything other than
// the page number invalidates the notion of "current page", so every other
// modifier snaps the page back to 1.

func (s Set) WithSearch(search string) Set {
	s.Search = search
	s.Page = 1
	return s
}

func (s Set) WithSeverity(severity string) Set {
	s.Severity = severity
	s.Page = 1
	return s
}

func (s Set) WithSource(source string) Set {
	s.Source = source
	s.Page = 1
	return s
}

func (s Set) WithDateRange(start, end *time.Time) Set {
	s.StartDate = start
	s.EndDate = end
	s.Page = 1
	return s
}

func (s Set) WithSort(sortBy, sortOrder string) Set {
	s.SortBy = sortBy
	s.SortOrder = sortOrder
	s.Page = 1
	return s
}

func (s Set) WithPageSize(pageSize int) Set {
	s.PageSize = pageSize
	s.Page = 1
	return s
}

func (s Set) WithPage(page int) Set {
	s.Page = page
	return s
}
