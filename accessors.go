// Typed accessors, one pair per registered key.
//
// The setters discard the error from Set and SetValues. Each one names a
// registered key of the matching cardinality, and those are the only
// conditions Set and SetValues report.
package mtif

// Author is the post's author.
func (p *Post) Author() Value { return p.get(KeyAuthor) }
func (p *Post) SetAuthor(v Value) { _ = p.Set(KeyAuthor, v) }

// Title is the post's title.
func (p *Post) Title() Value { return p.get(KeyTitle) }
func (p *Post) SetTitle(v Value) { _ = p.Set(KeyTitle, v) }

// Status is the publication status, such as Publish or Draft.
func (p *Post) Status() Value { return p.get(KeyStatus) }
func (p *Post) SetStatus(v Value) { _ = p.Set(KeyStatus, v) }

// Basename is the file name used when the post is published.
func (p *Post) Basename() Value { return p.get(KeyBasename) }
func (p *Post) SetBasename(v Value) { _ = p.Set(KeyBasename, v) }

// Date is the post's timestamp.
func (p *Post) Date() Value { return p.get(KeyDate) }
func (p *Post) SetDate(v Value) { _ = p.Set(KeyDate, v) }

// UniqueURL is the post's permanent address.
func (p *Post) UniqueURL() Value { return p.get(KeyUniqueURL) }
func (p *Post) SetUniqueURL(v Value) { _ = p.Set(KeyUniqueURL, v) }

// Body is the main text of the post.
func (p *Post) Body() Value { return p.get(KeyBody) }
func (p *Post) SetBody(v Value) { _ = p.Set(KeyBody, v) }

// ExtendedBody is the text shown after the break.
func (p *Post) ExtendedBody() Value { return p.get(KeyExtendedBody) }
func (p *Post) SetExtendedBody(v Value) { _ = p.Set(KeyExtendedBody, v) }

// Excerpt is the post's summary.
func (p *Post) Excerpt() Value { return p.get(KeyExcerpt) }
func (p *Post) SetExcerpt(v Value) { _ = p.Set(KeyExcerpt, v) }

// Keywords is the free-form keyword text.
func (p *Post) Keywords() Value { return p.get(KeyKeywords) }
func (p *Post) SetKeywords(v Value) { _ = p.Set(KeyKeywords, v) }

// AllowComments reports whether readers may comment.
func (p *Post) AllowComments() Value { return p.get(KeyAllowComments) }
func (p *Post) SetAllowComments(v Value) { _ = p.Set(KeyAllowComments, v) }

// AllowPings reports whether the post accepts pings.
func (p *Post) AllowPings() Value { return p.get(KeyAllowPings) }
func (p *Post) SetAllowPings(v Value) { _ = p.Set(KeyAllowPings, v) }

// ConvertBreaks names the text filter applied to the body.
func (p *Post) ConvertBreaks() Value { return p.get(KeyConvertBreaks) }
func (p *Post) SetConvertBreaks(v Value) { _ = p.Set(KeyConvertBreaks, v) }

// NoEntry marks a post that carries no entry of its own.
func (p *Post) NoEntry() Value { return p.get(KeyNoEntry) }
func (p *Post) SetNoEntry(v Value) { _ = p.Set(KeyNoEntry, v) }

// PrimaryCategory is the post's main category.
func (p *Post) PrimaryCategory() Value { return p.get(KeyPrimaryCategory) }
func (p *Post) SetPrimaryCategory(v Value) { _ = p.Set(KeyPrimaryCategory, v) }

// Categories holds the post's categories in order.
func (p *Post) Categories() []Value { return p.list(KeyCategory) }
func (p *Post) SetCategories(vs ...Value) { _ = p.SetValues(KeyCategory, vs) }

// Tags holds the post's tags in order.
func (p *Post) Tags() []Value { return p.list(KeyTags) }
func (p *Post) SetTags(vs ...Value) { _ = p.SetValues(KeyTags, vs) }

// Comments holds the post's comment blocks in order.
func (p *Post) Comments() []Value { return p.list(KeyComment) }
func (p *Post) SetComments(vs ...Value) { _ = p.SetValues(KeyComment, vs) }

// Pings holds the post's ping blocks in order.
func (p *Post) Pings() []Value { return p.list(KeyPing) }
func (p *Post) SetPings(vs ...Value) { _ = p.SetValues(KeyPing, vs) }
