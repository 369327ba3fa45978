// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	mapYh1dJTtrtqQkimASyRuOqwΞΞ   = ord.NewMapSer[string, string](ord.String, ord.String)
	sliceLO2HsASr4o34oBGJIBA9GgΞΞ = ord.NewSliceSer[string](ord.String)
	sliceO7l6F7ceJ5sgaKQUvGAL7gΞΞ = ord.NewSliceSer[float32](varint.Float32)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var OpportunityMUS = opportunityMUS{}

type opportunityMUS struct{}

func (s opportunityMUS) Marshal(v Opportunity, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Description, bs[n:])
	n += ord.String.Marshal(v.Agency, bs[n:])
	n += ord.String.Marshal(v.Program, bs[n:])
	n += ord.String.Marshal(v.ProgramID, bs[n:])
	n += ord.String.Marshal(v.TopicNumber, bs[n:])
	n += ord.String.Marshal(v.Phase, bs[n:])
	n += ord.String.Marshal(v.AwardType, bs[n:])
	n += sliceLO2HsASr4o34oBGJIBA9GgΞΞ.Marshal(v.Keywords, bs[n:])
	n += ord.String.Marshal(v.URL, bs[n:])
	n += ord.String.Marshal(v.SolicitationURL, bs[n:])
	n += ord.String.Marshal(v.Status, bs[n:])
	n += ord.String.Marshal(v.PostedDate, bs[n:])
	n += ord.String.Marshal(v.OpenDate, bs[n:])
	n += ord.String.Marshal(v.CloseDate, bs[n:])
	n += ord.Bool.Marshal(v.AcceptsAnytime, bs[n:])
	n += sliceO7l6F7ceJ5sgaKQUvGAL7gΞΞ.Marshal(v.Vector, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
	return n + mapYh1dJTtrtqQkimASyRuOqwΞΞ.Marshal(v.Metadata, bs[n:])
}

func (s opportunityMUS) Unmarshal(bs []byte) (v Opportunity, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Agency, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Program, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ProgramID, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.TopicNumber, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Phase, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.AwardType, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Keywords, n1, err = sliceLO2HsASr4o34oBGJIBA9GgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.URL, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SolicitationURL, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Status, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PostedDate, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.OpenDate, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CloseDate, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.AcceptsAnytime, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = sliceO7l6F7ceJ5sgaKQUvGAL7gΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Metadata, n1, err = mapYh1dJTtrtqQkimASyRuOqwΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s opportunityMUS) Size(v Opportunity) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Description)
	size += ord.String.Size(v.Agency)
	size += ord.String.Size(v.Program)
	size += ord.String.Size(v.ProgramID)
	size += ord.String.Size(v.TopicNumber)
	size += ord.String.Size(v.Phase)
	size += ord.String.Size(v.AwardType)
	size += sliceLO2HsASr4o34oBGJIBA9GgΞΞ.Size(v.Keywords)
	size += ord.String.Size(v.URL)
	size += ord.String.Size(v.SolicitationURL)
	size += ord.String.Size(v.Status)
	size += ord.String.Size(v.PostedDate)
	size += ord.String.Size(v.OpenDate)
	size += ord.String.Size(v.CloseDate)
	size += ord.Bool.Size(v.AcceptsAnytime)
	size += sliceO7l6F7ceJ5sgaKQUvGAL7gΞΞ.Size(v.Vector)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	size += raw.TimeUnixMicro.Size(v.UpdatedAt)
	return size + mapYh1dJTtrtqQkimASyRuOqwΞΞ.Size(v.Metadata)
}

func (s opportunityMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceLO2HsASr4o34oBGJIBA9GgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceO7l6F7ceJ5sgaKQUvGAL7gΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = mapYh1dJTtrtqQkimASyRuOqwΞΞ.Skip(bs[n:])
	n += n1
	return
}

var ResearcherProfileMUS = researcherProfileMUS{}

type researcherProfileMUS struct{}

func (s researcherProfileMUS) Marshal(v ResearcherProfile, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += ord.String.Marshal(v.Summary, bs[n:])
	n += sliceLO2HsASr4o34oBGJIBA9GgΞΞ.Marshal(v.ResearchInterests, bs[n:])
	n += sliceLO2HsASr4o34oBGJIBA9GgΞΞ.Marshal(v.Education, bs[n:])
	n += sliceLO2HsASr4o34oBGJIBA9GgΞΞ.Marshal(v.Awards, bs[n:])
	n += ord.String.Marshal(v.Experience, bs[n:])
	n += ord.String.Marshal(v.Publications, bs[n:])
	n += ord.String.Marshal(v.Skills, bs[n:])
	n += ord.String.Marshal(v.CombinedText, bs[n:])
	n += sliceO7l6F7ceJ5sgaKQUvGAL7gΞΞ.Marshal(v.Vector, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s researcherProfileMUS) Unmarshal(bs []byte) (v ResearcherProfile, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Summary, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ResearchInterests, n1, err = sliceLO2HsASr4o34oBGJIBA9GgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Education, n1, err = sliceLO2HsASr4o34oBGJIBA9GgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Awards, n1, err = sliceLO2HsASr4o34oBGJIBA9GgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Experience, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Publications, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Skills, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CombinedText, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = sliceO7l6F7ceJ5sgaKQUvGAL7gΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s researcherProfileMUS) Size(v ResearcherProfile) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Name)
	size += ord.String.Size(v.Summary)
	size += sliceLO2HsASr4o34oBGJIBA9GgΞΞ.Size(v.ResearchInterests)
	size += sliceLO2HsASr4o34oBGJIBA9GgΞΞ.Size(v.Education)
	size += sliceLO2HsASr4o34oBGJIBA9GgΞΞ.Size(v.Awards)
	size += ord.String.Size(v.Experience)
	size += ord.String.Size(v.Publications)
	size += ord.String.Size(v.Skills)
	size += ord.String.Size(v.CombinedText)
	size += sliceO7l6F7ceJ5sgaKQUvGAL7gΞΞ.Size(v.Vector)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s researcherProfileMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceLO2HsASr4o34oBGJIBA9GgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceLO2HsASr4o34oBGJIBA9GgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceLO2HsASr4o34oBGJIBA9GgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceO7l6F7ceJ5sgaKQUvGAL7gΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var IngestCheckpointMUS = ingestCheckpointMUS{}

type ingestCheckpointMUS struct{}

func (s ingestCheckpointMUS) Marshal(v IngestCheckpoint, bs []byte) (n int) {
	n = IDMUS.Marshal(v.OpportunityId, bs)
	n += ord.String.Marshal(v.Title, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.ProcessedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.ExpiresAt, bs[n:])
}

func (s ingestCheckpointMUS) Unmarshal(bs []byte) (v IngestCheckpoint, n int, err error) {
	v.OpportunityId, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ProcessedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ExpiresAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s ingestCheckpointMUS) Size(v IngestCheckpoint) (size int) {
	size = IDMUS.Size(v.OpportunityId)
	size += ord.String.Size(v.Title)
	size += raw.TimeUnixMicro.Size(v.ProcessedAt)
	return size + raw.TimeUnixMicro.Size(v.ExpiresAt)
}

func (s ingestCheckpointMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
