package ptp

// codeTable is a closed lookup from a PTP code to its standard name. The
// engine propagates unknown codes verbatim; this table only helps
// display them.
type codeTable map[uint16]string

// Name returns the standard name for code, or "" if code is not one of
// the standard values (including the entire vendor-specific range).
func (t codeTable) Name(code uint16) string {
	return t[code]
}

// Response codes.
const (
	RC_Undefined                           uint16 = 0x2000
	RC_Ok                                  uint16 = 0x2001
	RC_GeneralError                        uint16 = 0x2002
	RC_SessionNotOpen                      uint16 = 0x2003
	RC_InvalidTransactionId                uint16 = 0x2004
	RC_OperationNotSupported               uint16 = 0x2005
	RC_ParameterNotSupported               uint16 = 0x2006
	RC_IncompleteTransfer                  uint16 = 0x2007
	RC_InvalidStorageId                    uint16 = 0x2008
	RC_InvalidObjectHandle                 uint16 = 0x2009
	RC_DevicePropNotSupported              uint16 = 0x200A
	RC_InvalidObjectFormatCode             uint16 = 0x200B
	RC_StoreFull                           uint16 = 0x200C
	RC_ObjectWriteProtected                uint16 = 0x200D
	RC_StoreReadOnly                       uint16 = 0x200E
	RC_AccessDenied                        uint16 = 0x200F
	RC_NoThumbnailPresent                  uint16 = 0x2010
	RC_SelfTestFailed                      uint16 = 0x2011
	RC_PartialDeletion                     uint16 = 0x2012
	RC_StoreNotAvailable                   uint16 = 0x2013
	RC_SpecificationByFormatUnsupported    uint16 = 0x2014
	RC_NoValidObjectInfo                   uint16 = 0x2015
	RC_InvalidCodeFormat                   uint16 = 0x2016
	RC_UnknownVendorCode                   uint16 = 0x2017
	RC_CaptureAlreadyTerminated            uint16 = 0x2018
	RC_DeviceBusy                          uint16 = 0x2019
	RC_InvalidParentObject                 uint16 = 0x201A
	RC_InvalidDevicePropFormat             uint16 = 0x201B
	RC_InvalidDevicePropValue              uint16 = 0x201C
	RC_InvalidParameter                    uint16 = 0x201D
	RC_SessionAlreadyOpen                  uint16 = 0x201E
	RC_TransactionCancelled                uint16 = 0x201F
	RC_SpecificationOfDestinationUnsupported uint16 = 0x2020
)

// StandardResponseCode is the name lookup for PTP standard response
// codes. Other 0x2xxx/0xAxxx codes are surfaced numerically by Error.
var StandardResponseCode = codeTable{
	RC_Undefined:                           "Undefined",
	RC_Ok:                                  "Ok",
	RC_GeneralError:                        "GeneralError",
	RC_SessionNotOpen:                      "SessionNotOpen",
	RC_InvalidTransactionId:                "InvalidTransactionId",
	RC_OperationNotSupported:               "OperationNotSupported",
	RC_ParameterNotSupported:               "ParameterNotSupported",
	RC_IncompleteTransfer:                  "IncompleteTransfer",
	RC_InvalidStorageId:                    "InvalidStorageId",
	RC_InvalidObjectHandle:                 "InvalidObjectHandle",
	RC_DevicePropNotSupported:              "DevicePropNotSupported",
	RC_InvalidObjectFormatCode:             "InvalidObjectFormatCode",
	RC_StoreFull:                           "StoreFull",
	RC_ObjectWriteProtected:                "ObjectWriteProtected",
	RC_StoreReadOnly:                       "StoreReadOnly",
	RC_AccessDenied:                        "AccessDenied",
	RC_NoThumbnailPresent:                  "NoThumbnailPresent",
	RC_SelfTestFailed:                      "SelfTestFailed",
	RC_PartialDeletion:                     "PartialDeletion",
	RC_StoreNotAvailable:                   "StoreNotAvailable",
	RC_SpecificationByFormatUnsupported:    "SpecificationByFormatUnsupported",
	RC_NoValidObjectInfo:                   "NoValidObjectInfo",
	RC_InvalidCodeFormat:                   "InvalidCodeFormat",
	RC_UnknownVendorCode:                   "UnknownVendorCode",
	RC_CaptureAlreadyTerminated:            "CaptureAlreadyTerminated",
	RC_DeviceBusy:                          "DeviceBusy",
	RC_InvalidParentObject:                 "InvalidParentObject",
	RC_InvalidDevicePropFormat:             "InvalidDevicePropFormat",
	RC_InvalidDevicePropValue:              "InvalidDevicePropValue",
	RC_InvalidParameter:                    "InvalidParameter",
	RC_SessionAlreadyOpen:                  "SessionAlreadyOpen",
	RC_TransactionCancelled:                "TransactionCancelled",
	RC_SpecificationOfDestinationUnsupported: "SpecificationOfDestinationUnsupported",
}

// Command (operation) codes, PTP 1.1 standard set.
const (
	OC_Undefined            uint16 = 0x1000
	OC_GetDeviceInfo        uint16 = 0x1001
	OC_OpenSession          uint16 = 0x1002
	OC_CloseSession         uint16 = 0x1003
	OC_GetStorageIDs        uint16 = 0x1004
	OC_GetStorageInfo       uint16 = 0x1005
	OC_GetNumObjects        uint16 = 0x1006
	OC_GetObjectHandles     uint16 = 0x1007
	OC_GetObjectInfo        uint16 = 0x1008
	OC_GetObject            uint16 = 0x1009
	OC_GetThumb             uint16 = 0x100A
	OC_DeleteObject         uint16 = 0x100B
	OC_SendObjectInfo       uint16 = 0x100C
	OC_SendObject           uint16 = 0x100D
	OC_InitiateCapture      uint16 = 0x100E
	OC_FormatStore          uint16 = 0x100F
	OC_ResetDevice          uint16 = 0x1010
	OC_SelfTest             uint16 = 0x1011
	OC_SetObjectProtection  uint16 = 0x1012
	OC_PowerDown            uint16 = 0x1013
	OC_GetDevicePropDesc    uint16 = 0x1014
	OC_GetDevicePropValue   uint16 = 0x1015
	OC_SetDevicePropValue   uint16 = 0x1016
	OC_ResetDevicePropValue uint16 = 0x1017
	OC_TerminateOpenCapture uint16 = 0x1018
	OC_MoveObject           uint16 = 0x1019
	OC_CopyObject           uint16 = 0x101A
	OC_GetPartialObject     uint16 = 0x101B
	OC_InitiateOpenCapture  uint16 = 0x101C
)

// StandardCommandCode is the name lookup for PTP standard operation
// codes. Vendor-specific codes (typically 0x9xxx) are accepted by the
// engine as opaque u16s and return "" here.
var StandardCommandCode = codeTable{
	OC_Undefined:            "Undefined",
	OC_GetDeviceInfo:        "GetDeviceInfo",
	OC_OpenSession:          "OpenSession",
	OC_CloseSession:         "CloseSession",
	OC_GetStorageIDs:        "GetStorageIDs",
	OC_GetStorageInfo:       "GetStorageInfo",
	OC_GetNumObjects:        "GetNumObjects",
	OC_GetObjectHandles:     "GetObjectHandles",
	OC_GetObjectInfo:        "GetObjectInfo",
	OC_GetObject:            "GetObject",
	OC_GetThumb:             "GetThumb",
	OC_DeleteObject:         "DeleteObject",
	OC_SendObjectInfo:       "SendObjectInfo",
	OC_SendObject:           "SendObject",
	OC_InitiateCapture:      "InitiateCapture",
	OC_FormatStore:          "FormatStore",
	OC_ResetDevice:          "ResetDevice",
	OC_SelfTest:             "SelfTest",
	OC_SetObjectProtection:  "SetObjectProtection",
	OC_PowerDown:            "PowerDown",
	OC_GetDevicePropDesc:    "GetDevicePropDesc",
	OC_GetDevicePropValue:   "GetDevicePropValue",
	OC_SetDevicePropValue:   "SetDevicePropValue",
	OC_ResetDevicePropValue: "ResetDevicePropValue",
	OC_TerminateOpenCapture: "TerminateOpenCapture",
	OC_MoveObject:           "MoveObject",
	OC_CopyObject:           "CopyObject",
	OC_GetPartialObject:     "GetPartialObject",
	OC_InitiateOpenCapture:  "InitiateOpenCapture",
}
