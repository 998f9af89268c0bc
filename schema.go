package mylist

// Column maps one named CSV column onto an Item field.
type Column struct {
	// Name is the header written for the column.
	Name string

	// Aliases are alternate header names accepted on read.
	Aliases []string

	Get func(*Item) string
	Set func(*Item, string)
}

// Names returns the header name followed by its aliases.
func (c Column) Names() []string {
	return append([]string{c.Name}, c.Aliases...)
}

// Schema is an ordered list of columns.
type Schema []Column

// Header returns the column names in order.
func (s Schema) Header() []string {
	header := make([]string, len(s))
	for i, c := range s {
		header[i] = c.Name
	}
	return header
}

// Row returns the cells of item in schema order.
func (s Schema) Row(item *Item) []string {
	row := make([]string, len(s))
	for i, c := range s {
		row[i] = c.Get(item)
	}
	return row
}

func textColumn(name string, field func(*Item) *string, aliases ...string) Column {
	return Column{
		Name:    name,
		Aliases: aliases,
		Get:     func(i *Item) string { return *field(i) },
		Set:     func(i *Item, v string) { *field(i) = v },
	}
}

func seenColumn(name string, aliases ...string) Column {
	return Column{
		Name:    name,
		Aliases: aliases,
		Get:     func(i *Item) string { return FormatSeen(i.Seen) },
		Set:     func(i *Item, v string) { i.Seen = ParseSeen(v) },
	}
}

var (
	colID  = textColumn("id", func(i *Item) *string { return &i.ID })
	colURL = textColumn("url", func(i *Item) *string { return &i.URL })
)

// MinimalSchema is the four-column layout: title,id,url,seen.
var MinimalSchema = Schema{
	textColumn("title", func(i *Item) *string { return &i.Title }, "titulo"),
	colID,
	colURL,
	seenColumn("seen", "visto"),
}

// FullSchema is the 22-column layout carrying every provenance field.
var FullSchema = Schema{
	textColumn("titulo", func(i *Item) *string { return &i.Title }, "title"),
	colID,
	colURL,
	textColumn("href_original", func(i *Item) *string { return &i.HrefOriginal }),
	textColumn("unifiedEntityId", func(i *Item) *string { return &i.UnifiedEntityID }),
	textColumn("list_id", func(i *Item) *string { return &i.ListID }),
	textColumn("location", func(i *Item) *string { return &i.Location }),
	textColumn("rank", func(i *Item) *string { return &i.Rank }),
	textColumn("row", func(i *Item) *string { return &i.Row }),
	textColumn("track_id", func(i *Item) *string { return &i.TrackID }),
	textColumn("request_id", func(i *Item) *string { return &i.RequestID }),
	textColumn("lolomo_id", func(i *Item) *string { return &i.LolomoID }),
	textColumn("image_key", func(i *Item) *string { return &i.ImageKey }),
	textColumn("supp_video_id", func(i *Item) *string { return &i.SuppVideoID }),
	textColumn("appView", func(i *Item) *string { return &i.AppView }),
	textColumn("image_url", func(i *Item) *string { return &i.ImageURL }),
	textColumn("aria_label", func(i *Item) *string { return &i.AriaLabel }),
	textColumn("titulo_fallback", func(i *Item) *string { return &i.TitleFallback }),
	textColumn("container_id", func(i *Item) *string { return &i.ContainerID }),
	textColumn("tracking_uuid", func(i *Item) *string { return &i.TrackingUUID }),
	textColumn("tctx", func(i *Item) *string { return &i.TrackingContext }),
	seenColumn("visto", "seen"),
}
