// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: questionbank/v1/questionbank.proto

package questionbankv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Question struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Year          int32                  `protobuf:"varint,2,opt,name=year,proto3" json:"year,omitempty"` // 0 when the source year is unknown
	Subject       string                 `protobuf:"bytes,3,opt,name=subject,proto3" json:"subject,omitempty"`
	Topic         string                 `protobuf:"bytes,4,opt,name=topic,proto3" json:"topic,omitempty"`
	Subtopic      string                 `protobuf:"bytes,5,opt,name=subtopic,proto3" json:"subtopic,omitempty"`
	QuestionText  string                 `protobuf:"bytes,6,opt,name=question_text,json=questionText,proto3" json:"question_text,omitempty"`
	Options       map[string]string      `protobuf:"bytes,7,rep,name=options,proto3" json:"options,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"` // keys A-D
	CorrectAnswer string                 `protobuf:"bytes,8,opt,name=correct_answer,json=correctAnswer,proto3" json:"correct_answer,omitempty"`
	Explanation   string                 `protobuf:"bytes,9,opt,name=explanation,proto3" json:"explanation,omitempty"`
	TaggingMethod string                 `protobuf:"bytes,10,opt,name=tagging_method,json=taggingMethod,proto3" json:"tagging_method,omitempty"` // none | rule_based | llm
	TagConfidence int32                  `protobuf:"varint,11,opt,name=tag_confidence,json=tagConfidence,proto3" json:"tag_confidence,omitempty"`
	SourcePdf     string                 `protobuf:"bytes,12,opt,name=source_pdf,json=sourcePdf,proto3" json:"source_pdf,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Question) Reset() {
	*x = Question{}
	mi := &file_questionbank_v1_questionbank_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Question) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Question) ProtoMessage() {}

func (x *Question) ProtoReflect() protoreflect.Message {
	mi := &file_questionbank_v1_questionbank_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Question.ProtoReflect.Descriptor instead.
func (*Question) Descriptor() ([]byte, []int) {
	return file_questionbank_v1_questionbank_proto_rawDescGZIP(), []int{0}
}

func (x *Question) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Question) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

func (x *Question) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

func (x *Question) GetTopic() string {
	if x != nil {
		return x.Topic
	}
	return ""
}

func (x *Question) GetSubtopic() string {
	if x != nil {
		return x.Subtopic
	}
	return ""
}

func (x *Question) GetQuestionText() string {
	if x != nil {
		return x.QuestionText
	}
	return ""
}

func (x *Question) GetOptions() map[string]string {
	if x != nil {
		return x.Options
	}
	return nil
}

func (x *Question) GetCorrectAnswer() string {
	if x != nil {
		return x.CorrectAnswer
	}
	return ""
}

func (x *Question) GetExplanation() string {
	if x != nil {
		return x.Explanation
	}
	return ""
}

func (x *Question) GetTaggingMethod() string {
	if x != nil {
		return x.TaggingMethod
	}
	return ""
}

func (x *Question) GetTagConfidence() int32 {
	if x != nil {
		return x.TagConfidence
	}
	return 0
}

func (x *Question) GetSourcePdf() string {
	if x != nil {
		return x.SourcePdf
	}
	return ""
}

type ListQuestionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Year          int32                  `protobuf:"varint,1,opt,name=year,proto3" json:"year,omitempty"`      // 0 means any year
	Subject       string                 `protobuf:"bytes,2,opt,name=subject,proto3" json:"subject,omitempty"` // empty means any subject
	Limit         int32                  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,4,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListQuestionsRequest) Reset() {
	*x = ListQuestionsRequest{}
	mi := &file_questionbank_v1_questionbank_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListQuestionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListQuestionsRequest) ProtoMessage() {}

func (x *ListQuestionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_questionbank_v1_questionbank_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListQuestionsRequest.ProtoReflect.Descriptor instead.
func (*ListQuestionsRequest) Descriptor() ([]byte, []int) {
	return file_questionbank_v1_questionbank_proto_rawDescGZIP(), []int{1}
}

func (x *ListQuestionsRequest) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

func (x *ListQuestionsRequest) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

func (x *ListQuestionsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListQuestionsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListQuestionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Questions     []*Question            `protobuf:"bytes,1,rep,name=questions,proto3" json:"questions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListQuestionsResponse) Reset() {
	*x = ListQuestionsResponse{}
	mi := &file_questionbank_v1_questionbank_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListQuestionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListQuestionsResponse) ProtoMessage() {}

func (x *ListQuestionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_questionbank_v1_questionbank_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListQuestionsResponse.ProtoReflect.Descriptor instead.
func (*ListQuestionsResponse) Descriptor() ([]byte, []int) {
	return file_questionbank_v1_questionbank_proto_rawDescGZIP(), []int{2}
}

func (x *ListQuestionsResponse) GetQuestions() []*Question {
	if x != nil {
		return x.Questions
	}
	return nil
}

type GetQuestionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetQuestionRequest) Reset() {
	*x = GetQuestionRequest{}
	mi := &file_questionbank_v1_questionbank_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetQuestionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetQuestionRequest) ProtoMessage() {}

func (x *GetQuestionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_questionbank_v1_questionbank_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetQuestionRequest.ProtoReflect.Descriptor instead.
func (*GetQuestionRequest) Descriptor() ([]byte, []int) {
	return file_questionbank_v1_questionbank_proto_rawDescGZIP(), []int{3}
}

func (x *GetQuestionRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetQuestionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Question      *Question              `protobuf:"bytes,1,opt,name=question,proto3" json:"question,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetQuestionResponse) Reset() {
	*x = GetQuestionResponse{}
	mi := &file_questionbank_v1_questionbank_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetQuestionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetQuestionResponse) ProtoMessage() {}

func (x *GetQuestionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_questionbank_v1_questionbank_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetQuestionResponse.ProtoReflect.Descriptor instead.
func (*GetQuestionResponse) Descriptor() ([]byte, []int) {
	return file_questionbank_v1_questionbank_proto_rawDescGZIP(), []int{4}
}

func (x *GetQuestionResponse) GetQuestion() *Question {
	if x != nil {
		return x.Question
	}
	return nil
}

type YearCountsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *YearCountsRequest) Reset() {
	*x = YearCountsRequest{}
	mi := &file_questionbank_v1_questionbank_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *YearCountsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*YearCountsRequest) ProtoMessage() {}

func (x *YearCountsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_questionbank_v1_questionbank_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use YearCountsRequest.ProtoReflect.Descriptor instead.
func (*YearCountsRequest) Descriptor() ([]byte, []int) {
	return file_questionbank_v1_questionbank_proto_rawDescGZIP(), []int{5}
}

type YearCountsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Counts        map[int32]int32        `protobuf:"bytes,1,rep,name=counts,proto3" json:"counts,omitempty" protobuf_key:"varint,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *YearCountsResponse) Reset() {
	*x = YearCountsResponse{}
	mi := &file_questionbank_v1_questionbank_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *YearCountsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*YearCountsResponse) ProtoMessage() {}

func (x *YearCountsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_questionbank_v1_questionbank_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use YearCountsResponse.ProtoReflect.Descriptor instead.
func (*YearCountsResponse) Descriptor() ([]byte, []int) {
	return file_questionbank_v1_questionbank_proto_rawDescGZIP(), []int{6}
}

func (x *YearCountsResponse) GetCounts() map[int32]int32 {
	if x != nil {
		return x.Counts
	}
	return nil
}

type IngestDirectoryRequest struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	RootPath           string                 `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"` // directory of per-year text files
	RequireFullOptions bool                   `protobuf:"varint,2,opt,name=require_full_options,json=requireFullOptions,proto3" json:"require_full_options,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_questionbank_v1_questionbank_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_questionbank_v1_questionbank_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_questionbank_v1_questionbank_proto_rawDescGZIP(), []int{7}
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetRequireFullOptions() bool {
	if x != nil {
		return x.RequireFullOptions
	}
	return false
}

type IngestDirectoryResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	RunId             string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	Status            string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	TotalQuestions    int32                  `protobuf:"varint,3,opt,name=total_questions,json=totalQuestions,proto3" json:"total_questions,omitempty"`
	DuplicatesRemoved int32                  `protobuf:"varint,4,opt,name=duplicates_removed,json=duplicatesRemoved,proto3" json:"duplicates_removed,omitempty"`
	Problems          []string               `protobuf:"bytes,5,rep,name=problems,proto3" json:"problems,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_questionbank_v1_questionbank_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_questionbank_v1_questionbank_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_questionbank_v1_questionbank_proto_rawDescGZIP(), []int{8}
}

func (x *IngestDirectoryResponse) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *IngestDirectoryResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *IngestDirectoryResponse) GetTotalQuestions() int32 {
	if x != nil {
		return x.TotalQuestions
	}
	return 0
}

func (x *IngestDirectoryResponse) GetDuplicatesRemoved() int32 {
	if x != nil {
		return x.DuplicatesRemoved
	}
	return 0
}

func (x *IngestDirectoryResponse) GetProblems() []string {
	if x != nil {
		return x.Problems
	}
	return nil
}

type ExportQuestionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Year          int32                  `protobuf:"varint,1,opt,name=year,proto3" json:"year,omitempty"`
	Subject       string                 `protobuf:"bytes,2,opt,name=subject,proto3" json:"subject,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportQuestionsRequest) Reset() {
	*x = ExportQuestionsRequest{}
	mi := &file_questionbank_v1_questionbank_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportQuestionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportQuestionsRequest) ProtoMessage() {}

func (x *ExportQuestionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_questionbank_v1_questionbank_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportQuestionsRequest.ProtoReflect.Descriptor instead.
func (*ExportQuestionsRequest) Descriptor() ([]byte, []int) {
	return file_questionbank_v1_questionbank_proto_rawDescGZIP(), []int{9}
}

func (x *ExportQuestionsRequest) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

func (x *ExportQuestionsRequest) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

type ExportQuestionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportQuestionsResponse) Reset() {
	*x = ExportQuestionsResponse{}
	mi := &file_questionbank_v1_questionbank_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportQuestionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportQuestionsResponse) ProtoMessage() {}

func (x *ExportQuestionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_questionbank_v1_questionbank_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportQuestionsResponse.ProtoReflect.Descriptor instead.
func (*ExportQuestionsResponse) Descriptor() ([]byte, []int) {
	return file_questionbank_v1_questionbank_proto_rawDescGZIP(), []int{10}
}

func (x *ExportQuestionsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_questionbank_v1_questionbank_proto protoreflect.FileDescriptor

const file_questionbank_v1_questionbank_proto_rawDesc = "" +
	"\n" +
	"\"questionbank/v1/questionbank.proto\x12\x0fquestionbank.v1\"\xd3\x03\n" +
	"\bQuestion\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04year\x18\x02 \x01(\x05R\x04year\x12\x18\n" +
	"\asubject\x18\x03 \x01(\tR\asubject\x12\x14\n" +
	"\x05topic\x18\x04 \x01(\tR\x05topic\x12\x1a\n" +
	"\bsubtopic\x18\x05 \x01(\tR\bsubtopic\x12#\n" +
	"\rquestion_text\x18\x06 \x01(\tR\fquestionText\x12@\n" +
	"\aoptions\x18\a \x03(\v2&.questionbank.v1.Question.OptionsEntryR\aoptions\x12%\n" +
	"\x0ecorrect_answer\x18\b \x01(\tR\rcorrectAnswer\x12 \n" +
	"\vexplanation\x18\t \x01(\tR\vexplanation\x12%\n" +
	"\x0etagging_method\x18\n" +
	" \x01(\tR\rtaggingMethod\x12%\n" +
	"\x0etag_confidence\x18\v \x01(\x05R\rtagConfidence\x12\x1d\n" +
	"\n" +
	"source_pdf\x18\f \x01(\tR\tsourcePdf\x1a:\n" +
	"\fOptionsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"r\n" +
	"\x14ListQuestionsRequest\x12\x12\n" +
	"\x04year\x18\x01 \x01(\x05R\x04year\x12\x18\n" +
	"\asubject\x18\x02 \x01(\tR\asubject\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x04 \x01(\x05R\x06offset\"P\n" +
	"\x15ListQuestionsResponse\x127\n" +
	"\tquestions\x18\x01 \x03(\v2\x19.questionbank.v1.QuestionR\tquestions\"$\n" +
	"\x12GetQuestionRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"L\n" +
	"\x13GetQuestionResponse\x125\n" +
	"\bquestion\x18\x01 \x01(\v2\x19.questionbank.v1.QuestionR\bquestion\"\x13\n" +
	"\x11YearCountsRequest\"\x98\x01\n" +
	"\x12YearCountsResponse\x12G\n" +
	"\x06counts\x18\x01 \x03(\v2/.questionbank.v1.YearCountsResponse.CountsEntryR\x06counts\x1a9\n" +
	"\vCountsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\x05R\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\"g\n" +
	"\x16IngestDirectoryRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\x120\n" +
	"\x14require_full_options\x18\x02 \x01(\bR\x12requireFullOptions\"\xbc\x01\n" +
	"\x17IngestDirectoryResponse\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12'\n" +
	"\x0ftotal_questions\x18\x03 \x01(\x05R\x0etotalQuestions\x12-\n" +
	"\x12duplicates_removed\x18\x04 \x01(\x05R\x11duplicatesRemoved\x12\x1a\n" +
	"\bproblems\x18\x05 \x03(\tR\bproblems\"F\n" +
	"\x16ExportQuestionsRequest\x12\x12\n" +
	"\x04year\x18\x01 \x01(\x05R\x04year\x12\x18\n" +
	"\asubject\x18\x02 \x01(\tR\asubject\"-\n" +
	"\x17ExportQuestionsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xa3\x02\n" +
	"\x10QuestionsService\x12^\n" +
	"\rListQuestions\x12%.questionbank.v1.ListQuestionsRequest\x1a&.questionbank.v1.ListQuestionsResponse\x12X\n" +
	"\vGetQuestion\x12#.questionbank.v1.GetQuestionRequest\x1a$.questionbank.v1.GetQuestionResponse\x12U\n" +
	"\n" +
	"YearCounts\x12\".questionbank.v1.YearCountsRequest\x1a#.questionbank.v1.YearCountsResponse2x\n" +
	"\x10IngestionService\x12d\n" +
	"\x0fIngestDirectory\x12'.questionbank.v1.IngestDirectoryRequest\x1a(.questionbank.v1.IngestDirectoryResponse2u\n" +
	"\rExportService\x12d\n" +
	"\x0fExportQuestions\x12'.questionbank.v1.ExportQuestionsRequest\x1a(.questionbank.v1.ExportQuestionsResponseBLZJgithub.com/examtools/questionbank/gen/proto/questionbank/v1;questionbankv1b\x06proto3"

var (
	file_questionbank_v1_questionbank_proto_rawDescOnce sync.Once
	file_questionbank_v1_questionbank_proto_rawDescData []byte
)

func file_questionbank_v1_questionbank_proto_rawDescGZIP() []byte {
	file_questionbank_v1_questionbank_proto_rawDescOnce.Do(func() {
		file_questionbank_v1_questionbank_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_questionbank_v1_questionbank_proto_rawDesc), len(file_questionbank_v1_questionbank_proto_rawDesc)))
	})
	return file_questionbank_v1_questionbank_proto_rawDescData
}

var file_questionbank_v1_questionbank_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_questionbank_v1_questionbank_proto_goTypes = []any{
	(*Question)(nil),                // 0: questionbank.v1.Question
	(*ListQuestionsRequest)(nil),    // 1: questionbank.v1.ListQuestionsRequest
	(*ListQuestionsResponse)(nil),   // 2: questionbank.v1.ListQuestionsResponse
	(*GetQuestionRequest)(nil),      // 3: questionbank.v1.GetQuestionRequest
	(*GetQuestionResponse)(nil),     // 4: questionbank.v1.GetQuestionResponse
	(*YearCountsRequest)(nil),       // 5: questionbank.v1.YearCountsRequest
	(*YearCountsResponse)(nil),      // 6: questionbank.v1.YearCountsResponse
	(*IngestDirectoryRequest)(nil),  // 7: questionbank.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil), // 8: questionbank.v1.IngestDirectoryResponse
	(*ExportQuestionsRequest)(nil),  // 9: questionbank.v1.ExportQuestionsRequest
	(*ExportQuestionsResponse)(nil), // 10: questionbank.v1.ExportQuestionsResponse
	nil,                             // 11: questionbank.v1.Question.OptionsEntry
	nil,                             // 12: questionbank.v1.YearCountsResponse.CountsEntry
}
var file_questionbank_v1_questionbank_proto_depIdxs = []int32{
	11, // 0: questionbank.v1.Question.options:type_name -> questionbank.v1.Question.OptionsEntry
	0,  // 1: questionbank.v1.ListQuestionsResponse.questions:type_name -> questionbank.v1.Question
	0,  // 2: questionbank.v1.GetQuestionResponse.question:type_name -> questionbank.v1.Question
	12, // 3: questionbank.v1.YearCountsResponse.counts:type_name -> questionbank.v1.YearCountsResponse.CountsEntry
	1,  // 4: questionbank.v1.QuestionsService.ListQuestions:input_type -> questionbank.v1.ListQuestionsRequest
	3,  // 5: questionbank.v1.QuestionsService.GetQuestion:input_type -> questionbank.v1.GetQuestionRequest
	5,  // 6: questionbank.v1.QuestionsService.YearCounts:input_type -> questionbank.v1.YearCountsRequest
	7,  // 7: questionbank.v1.IngestionService.IngestDirectory:input_type -> questionbank.v1.IngestDirectoryRequest
	9,  // 8: questionbank.v1.ExportService.ExportQuestions:input_type -> questionbank.v1.ExportQuestionsRequest
	2,  // 9: questionbank.v1.QuestionsService.ListQuestions:output_type -> questionbank.v1.ListQuestionsResponse
	4,  // 10: questionbank.v1.QuestionsService.GetQuestion:output_type -> questionbank.v1.GetQuestionResponse
	6,  // 11: questionbank.v1.QuestionsService.YearCounts:output_type -> questionbank.v1.YearCountsResponse
	8,  // 12: questionbank.v1.IngestionService.IngestDirectory:output_type -> questionbank.v1.IngestDirectoryResponse
	10, // 13: questionbank.v1.ExportService.ExportQuestions:output_type -> questionbank.v1.ExportQuestionsResponse
	9,  // [9:14] is the sub-list for method output_type
	4,  // [4:9] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_questionbank_v1_questionbank_proto_init() }
func file_questionbank_v1_questionbank_proto_init() {
	if File_questionbank_v1_questionbank_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_questionbank_v1_questionbank_proto_rawDesc), len(file_questionbank_v1_questionbank_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_questionbank_v1_questionbank_proto_goTypes,
		DependencyIndexes: file_questionbank_v1_questionbank_proto_depIdxs,
		MessageInfos:      file_questionbank_v1_questionbank_proto_msgTypes,
	}.Build()
	File_questionbank_v1_questionbank_proto = out.File
	file_questionbank_v1_questionbank_proto_goTypes = nil
	file_questionbank_v1_questionbank_proto_depIdxs = nil
}
